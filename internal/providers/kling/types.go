package kling

// TaskRequest is the text-to-video creation payload. Fields are forwarded to
// the provider verbatim.
type TaskRequest struct {
	Prompt     string `json:"prompt"`
	Duration   int    `json:"duration"`
	Resolution string `json:"resolution"`
	FrameRate  int    `json:"frame_rate"`
	Style      string `json:"style"`
}

// TaskStatus is one observation of a remote task. The provider's status
// vocabulary is open ended; anything that is not terminal success or an
// explicit failure counts as still pending.
type TaskStatus struct {
	Status   string
	Message  string
	VideoURL string
}

// Succeeded reports whether the task reached a terminal-success status.
func (s TaskStatus) Succeeded() bool {
	return s.Status == "succeed" || s.Status == "completed"
}

// Failed reports whether the provider rejected the task for good.
func (s TaskStatus) Failed() bool {
	return s.Status == "failed"
}

type createTaskResponse struct {
	Data struct {
		TaskID string `json:"task_id"`
	} `json:"data"`
}

type taskStatusResponse struct {
	Data struct {
		TaskStatus    string `json:"task_status"`
		TaskStatusMsg string `json:"task_status_msg"`
		TaskResult    struct {
			Videos []struct {
				URL string `json:"url"`
			} `json:"videos"`
		} `json:"task_result"`
	} `json:"data"`
}
