package googlebooks

// volumeList is the response of the volumes search endpoint.
type volumeList struct {
	TotalItems int      `json:"totalItems"`
	Items      []volume `json:"items"`
}

// volume is a single catalog record, also returned by the detail endpoint.
type volume struct {
	ID         string     `json:"id"`
	VolumeInfo volumeInfo `json:"volumeInfo"`
}

type volumeInfo struct {
	Title         string      `json:"title"`
	Authors       []string    `json:"authors"`
	Description   string      `json:"description"`
	PageCount     *int        `json:"pageCount"`
	Categories    []string    `json:"categories"`
	ImageLinks    *imageLinks `json:"imageLinks"`
	PublishedDate string      `json:"publishedDate"`
	AverageRating *float64    `json:"averageRating"`
}

type imageLinks struct {
	SmallThumbnail string `json:"smallThumbnail"`
	Thumbnail      string `json:"thumbnail"`
}
