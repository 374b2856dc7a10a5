package models

// UploadResult is the tagged outcome of an upload request. Both branches are
// answered with HTTP 200 to keep the original contract: policy violations are
// reported in the body, not the status code.
type UploadResult struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Files   []UploadedFile `json:"files,omitempty"`
}

// UploadAccepted builds the success-shaped result listing every stored file.
func UploadAccepted(files []UploadedFile) UploadResult {
	return UploadResult{
		Status:  "amazing success!",
		Message: "thank you for uploading your files",
		Files:   files,
	}
}

// UploadRejected builds the failure-shaped result for policy violations.
func UploadRejected(message string) UploadResult {
	return UploadResult{
		Status:  "failed",
		Message: message,
	}
}

// Accepted reports which branch this result carries.
func (r UploadResult) Accepted() bool {
	return r.Files != nil
}
