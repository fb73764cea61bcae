package model

// FileUpload is a file received from a multipart form.
type FileUpload struct {
	Filename string
	Size     int64
	Content  []byte
}

type UploadedFile struct {
	OriginalName string `json:"originalName"`
	MimeType     string `json:"mimeType"`
	Size         int64  `json:"size"`
	Path         string `json:"path"`
	URL          string `json:"url"`
}

type UploadImagesResponse struct {
	Files []UploadedFile `json:"files"`
}
