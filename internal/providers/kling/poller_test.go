package kling

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/Damandeep1313/Kling2.0/internal/domain"
)

func TestWaitForVideoPollsUntilURL(t *testing.T) {
	transport := &stubTransport{getStubs: []response{
		{body: `{"data":{"task_status":"processing"}}`},
		{body: `{"data":{"task_status":"processing"}}`},
		{body: `{"data":{"task_status":"succeed","task_result":{"videos":[{"url":"https://x/video.mp4"}]}}}`},
	}}
	client := newTestClient(transport)

	start := time.Now()
	url, err := client.WaitForVideo(context.Background(), "tok", "task-1")
	if err != nil {
		t.Fatalf("WaitForVideo returned error: %v", err)
	}
	if url != "https://x/video.mp4" {
		t.Fatalf("url = %q", url)
	}
	if _, gets := transport.counts(); gets != 3 {
		t.Fatalf("status calls = %d, want 3", gets)
	}
	// Two waits between the three cycles.
	if elapsed := time.Since(start); elapsed < 2*client.pollInterval {
		t.Fatalf("elapsed %s, want at least %s", elapsed, 2*client.pollInterval)
	}
}

func TestWaitForVideoReadyWithoutURLKeepsPolling(t *testing.T) {
	transport := &stubTransport{getStubs: []response{
		{body: `{"data":{"task_status":"succeed"}}`},
		{body: `{"data":{"task_status":"succeed","task_result":{"videos":[{"url":"https://x/late.mp4"}]}}}`},
	}}
	client := newTestClient(transport)

	url, err := client.WaitForVideo(context.Background(), "tok", "task-1")
	if err != nil {
		t.Fatalf("WaitForVideo returned error: %v", err)
	}
	if url != "https://x/late.mp4" {
		t.Fatalf("url = %q", url)
	}
	if _, gets := transport.counts(); gets < 2 {
		t.Fatalf("status calls = %d, want at least 2", gets)
	}
}

func TestWaitForVideoRetriesTransientErrors(t *testing.T) {
	transport := &stubTransport{getStubs: []response{
		{status: http.StatusBadGateway, body: `upstream unavailable`},
		{status: http.StatusTooManyRequests, body: `slow down`},
		{body: `{"data":{"task_status":"completed","task_result":{"videos":[{"url":"https://x/ok.mp4"}]}}}`},
	}}
	client := newTestClient(transport)

	url, err := client.WaitForVideo(context.Background(), "tok", "task-1")
	if err != nil {
		t.Fatalf("WaitForVideo returned error: %v", err)
	}
	if url != "https://x/ok.mp4" {
		t.Fatalf("url = %q", url)
	}
	if _, gets := transport.counts(); gets != 3 {
		t.Fatalf("status calls = %d, want 3", gets)
	}
}

func TestWaitForVideoTerminalFailure(t *testing.T) {
	transport := &stubTransport{getStubs: []response{
		{body: `{"data":{"task_status":"failed","task_status_msg":"prompt rejected"}}`},
	}}
	client := newTestClient(transport)

	_, err := client.WaitForVideo(context.Background(), "tok", "task-1")
	if !errors.Is(err, domain.ErrTaskFailed) {
		t.Fatalf("err = %v, want ErrTaskFailed", err)
	}
	if got := err.Error(); got != "video generation failed: prompt rejected" {
		t.Fatalf("err message = %q", got)
	}
	if _, gets := transport.counts(); gets != 1 {
		t.Fatalf("status calls = %d, want 1", gets)
	}
}

func TestWaitForVideoHonorsContext(t *testing.T) {
	transport := &stubTransport{getStubs: []response{
		{body: `{"data":{"task_status":"processing"}}`},
	}}
	client := newTestClient(transport)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.WaitForVideo(ctx, "tok", "task-1")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want context.DeadlineExceeded", err)
	}
}
