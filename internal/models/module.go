package models

// Module is a top-level unit of course content. Modules are defined at build
// time in the catalog file and never change at runtime.
type Module struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Emoji       string     `json:"emoji"`
	CoverKey    string     `json:"cover_key"`
	LessonCount int        `json:"lesson_count"`
	Lessons     []Lesson   `json:"lessons"`
	Resources   []Resource `json:"resources"`
}

type Lesson struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Duration    string     `json:"duration"`
	VideoKey    string     `json:"video_key,omitempty"`
	AuthorNotes string     `json:"author_notes,omitempty"`
	Resources   []Resource `json:"resources,omitempty"`
}

// Resource is a downloadable attachment. An empty ObjectKey means the file is
// not uploaded yet and the resource renders as "coming soon".
type Resource struct {
	Title     string `json:"title"`
	ObjectKey string `json:"object_key,omitempty"`
}

type ModulePreview struct {
	ID          int            `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Emoji       string         `json:"emoji"`
	CoverURL    string         `json:"cover_url,omitempty"`
	LessonCount int            `json:"lesson_count"`
	Locked      bool           `json:"locked"`
	Progress    ModuleProgress `json:"progress"`
}

type ModuleDetail struct {
	ID          int            `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Emoji       string         `json:"emoji"`
	CoverURL    string         `json:"cover_url,omitempty"`
	Locked      bool           `json:"locked"`
	UpgradeCTA  bool           `json:"upgrade_cta"`
	Lessons     []LessonView   `json:"lessons"`
	Resources   []ResourceView `json:"resources"`
	Progress    ModuleProgress `json:"progress"`
}

type LessonView struct {
	ID          int            `json:"id"`
	Title       string         `json:"title"`
	Duration    string         `json:"duration"`
	VideoURL    string         `json:"video_url,omitempty"`
	ComingSoon  bool           `json:"coming_soon"`
	AuthorNotes string         `json:"author_notes"`
	Completed   bool           `json:"completed"`
	Resources   []ResourceView `json:"resources,omitempty"`
}

type ResourceView struct {
	Title       string `json:"title"`
	DownloadURL string `json:"download_url,omitempty"`
	ComingSoon  bool   `json:"coming_soon"`
}
