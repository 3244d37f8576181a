package entity

// MediaAsset is a file held by the media store. URL is what clients fetch,
// StorageID is what the store needs to delete it.
type MediaAsset struct {
	URL       string `json:"url"`
	StorageID string `json:"storageId"`
}

// IsZero reports whether the asset was never set.
func (a MediaAsset) IsZero() bool {
	return a.URL == "" && a.StorageID == ""
}

// MediaKind selects how the media store treats an upload.
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

// UploadedMedia is the outcome of a successful upload.
type UploadedMedia struct {
	MediaAsset
	// Duration in seconds, zero when the store could not tell.
	Duration float64 `json:"duration"`
}
