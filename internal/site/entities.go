package site

type Category string

const (
	CategoryTool    Category = "tool"
	CategoryGuide   Category = "guide"
	CategoryCompany Category = "company"
	CategoryLegal   Category = "legal"
)

type ChangeFreq string

const (
	Weekly  ChangeFreq = "weekly"
	Monthly ChangeFreq = "monthly"
	Yearly  ChangeFreq = "yearly"
)

func (c ChangeFreq) Valid() bool {
	switch c {
	case Weekly, Monthly, Yearly:
		return true
	}

	return false
}

// NavEntry is a single navigable link as shown in the header, footer and menu.
type NavEntry struct {
	Label       string
	Path        string
	Icon        string
	Description string
	Category    Category
}

// Tool holds the interactive part of a tool page.
type Tool struct {
	Colors []string
	Steps  []string
}

// Route is one published page. Navigation and sitemap data both hang off it.
type Route struct {
	Path        string
	Title       string
	Description string
	Keywords    []string

	// Template names the body template used to render the page.
	Template string

	ChangeFreq ChangeFreq
	Priority   float64

	// Unlisted routes are served but left out of the sitemap.
	Unlisted bool

	Nav  *NavEntry
	Tool *Tool
}

type Guide struct {
	Slug     string
	Title    string
	Summary  string
	Category string
	ReadTime string
	Icon     string
}
