package model

// Record is implemented by every entity kind stored in a directory index.
// Numbers are numeric strings; the list is kept sorted by their integer value.
type Record interface {
	Number() string
	Uploaded() string
	SetUploaded(string)
}

// Section is one heading/body block of a rich entity, with an optional image.
type Section struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
	Image   string `json:"image,omitempty"`
}

type CaseStudy struct {
	CaseStudyNumber string    `json:"case_study_number"`
	Title           string    `json:"title"`
	Location        string    `json:"location"`
	Date            string    `json:"date"`
	Category        string    `json:"category"`
	UploadDate      string    `json:"upload_date"`
	CoverImage      *string   `json:"cover_image"`
	PDFFile         *string   `json:"pdf_file"`
	Description     string    `json:"description"`
	Sections        []Section `json:"sections"`
}

func (c *CaseStudy) Number() string       { return c.CaseStudyNumber }
func (c *CaseStudy) Uploaded() string     { return c.UploadDate }
func (c *CaseStudy) SetUploaded(d string) { c.UploadDate = d }

type Event struct {
	EventNumber      string    `json:"event_number"`
	Title            string    `json:"title"`
	Date             string    `json:"date"`
	Location         string    `json:"location"`
	Type             string    `json:"type"`
	Status           string    `json:"status"`
	Description      string    `json:"description"`
	UploadDate       string    `json:"upload_date"`
	CoverImage       *string   `json:"cover_image"`
	RegistrationLink string    `json:"registration_link"`
	Sections         []Section `json:"sections"`
}

func (e *Event) Number() string       { return e.EventNumber }
func (e *Event) Uploaded() string     { return e.UploadDate }
func (e *Event) SetUploaded(d string) { e.UploadDate = d }

type Resource struct {
	ResourceNumber string    `json:"resource_number"`
	Title          string    `json:"title"`
	Type           string    `json:"type"`
	Description    string    `json:"description"`
	UploadDate     string    `json:"upload_date"`
	File           *string   `json:"file"`
	DownloadSize   string    `json:"download_size"`
	Sections       []Section `json:"sections"`
}

func (r *Resource) Number() string       { return r.ResourceNumber }
func (r *Resource) Uploaded() string     { return r.UploadDate }
func (r *Resource) SetUploaded(d string) { r.UploadDate = d }

type Album struct {
	AlbumNumber string   `json:"album_number"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
	UploadDate  string   `json:"upload_date"`
	CoverImage  *string  `json:"cover_image"`
	Photos      []string `json:"photos"`
}

func (a *Album) Number() string       { return a.AlbumNumber }
func (a *Album) Uploaded() string     { return a.UploadDate }
func (a *Album) SetUploaded(d string) { a.UploadDate = d }

// Partner is one organization in the team roster, owning its members.
type Partner struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Members     []Member `json:"members"`
}

type Member struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Bio        string `json:"bio"`
	Email      string `json:"email"`
	LinkedIn   string `json:"linkedin"`
	Image      string `json:"image"`
}
