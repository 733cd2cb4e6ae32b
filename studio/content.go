package studio

// ContentType is the kind of content being composed.
type ContentType uint8

const (
	ContentPost ContentType = iota
	ContentArticle
	ContentCarousel
)

var contentTypes = []ContentType{ContentPost, ContentArticle, ContentCarousel}

func (c ContentType) Label() string {
	switch c {
	case ContentArticle:
		return "Article"
	case ContentCarousel:
		return "Carousel"
	default:
		return "LinkedIn Post"
	}
}

func (c ContentType) String() string {
	switch c {
	case ContentArticle:
		return "article"
	case ContentCarousel:
		return "carousel"
	default:
		return "post"
	}
}

// Ideas are the fixed content ideas offered by the ideas panel.
var Ideas = []string{
	"Share your recent project success story",
	"Industry insights and trends analysis",
	"Career growth tips and advice",
	"Technical tutorial or how-to guide",
	"Team collaboration success story",
	"Product development journey",
	"Leadership lessons learned",
	"Innovation in technology",
}

// DefaultText is the editor content of a fresh session.
const DefaultText = "Start typing your post here..."

// Preferences are kept in memory for the session only.
type Preferences struct {
	DefaultType        ContentType
	AutoSuggestions    bool
	HashtagSuggestions bool
}

func DefaultPreferences() Preferences {
	return Preferences{DefaultType: ContentPost, AutoSuggestions: true, HashtagSuggestions: true}
}
