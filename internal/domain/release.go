package domain

// Release describes a published release of githelper itself.
type Release struct {
	Name    string
	TagName string
	Assets  []ReleaseAsset
}

// ReleaseAsset is a downloadable file attached to a release.
type ReleaseAsset struct {
	ID          int64
	Name        string
	DownloadURL string
}

// Asset returns the asset with the given name.
func (r *Release) Asset(name string) (ReleaseAsset, bool) {
	for _, a := range r.Assets {
		if a.Name == name {
			return a, true
		}
	}
	return ReleaseAsset{}, false
}
