package models

// GalleryItem is a work-portfolio image shown on the landing page.
type GalleryItem struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Image   string `json:"image"`
	Caption string `json:"caption,omitempty"`
}
