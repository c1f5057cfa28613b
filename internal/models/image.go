package models

// Image describes an object stored in the media folder.
type Image struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Link string `json:"link"`
}

// ImageUpload carries an uploaded file payload from the HTTP layer to the
// media storage.
type ImageUpload struct {
	Data     []byte
	Name     string
	MimeType string
}
