package entity

// ObjectUploadResult describes an object written to the media store.
type ObjectUploadResult struct {
	ObjectName string `json:"object_name"`
	Location   string `json:"location"`
	Bucket     string `json:"bucket"`
	Size       int64  `json:"size"`
}
