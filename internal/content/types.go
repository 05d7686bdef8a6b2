package content

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Body block kinds.
const (
	BlockParagraph = "paragraph"
	BlockList      = "list"
)

// BodyBlock is one segment of a tab body: either a paragraph of prose or a
// bulleted list. On the wire a paragraph is a bare JSON string and a list is
// an object, matching the exported snippet format the manager produces.
type BodyBlock struct {
	Type  string
	Text  string
	Items []string
}

// Paragraph builds a paragraph block.
func Paragraph(text string) BodyBlock {
	return BodyBlock{Type: BlockParagraph, Text: text}
}

// List builds a list block.
func List(items ...string) BodyBlock {
	return BodyBlock{Type: BlockList, Items: items}
}

type listBlockJSON struct {
	Type  string   `json:"type"`
	Items []string `json:"items"`
}

func (b BodyBlock) MarshalJSON() ([]byte, error) {
	if b.Type == BlockList {
		return json.Marshal(listBlockJSON{Type: BlockList, Items: b.Items})
	}
	return json.Marshal(b.Text)
}

func (b *BodyBlock) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*b = Paragraph(text)
		return nil
	}

	var list listBlockJSON
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("body block must be a string or a list object: %w", err)
	}
	if list.Type != BlockList {
		return fmt.Errorf("unknown body block type %q", list.Type)
	}
	*b = BodyBlock{Type: BlockList, Items: list.Items}
	return nil
}

// EmbedConfig describes a third-party storefront widget injected into a tab.
type EmbedConfig struct {
	Type           string   `json:"type"`
	ContainerID    string   `json:"containerId"`
	ScriptURL      string   `json:"scriptUrl"`
	Arguments      []string `json:"arguments,omitempty"`
	LoadingMessage string   `json:"loadingMessage,omitempty"`
	ErrorMessage   string   `json:"errorMessage,omitempty"`
}

// ContactDetails drives the contact tab: the displayed phone and email rows
// plus the form delivery settings. A normalized value always carries
// FormRecipient and FormEndpoint; see NormalizeContactDetails.
type ContactDetails struct {
	PhoneLabel        string `json:"phoneLabel,omitempty"`
	PhoneNumber       string `json:"phoneNumber,omitempty"`
	EmailLabel        string `json:"emailLabel,omitempty"`
	EmailAddress      string `json:"emailAddress,omitempty"`
	FormRecipient     string `json:"formRecipient,omitempty"`
	FormEndpoint      string `json:"formEndpoint,omitempty"`
	SubmittingMessage string `json:"submittingMessage,omitempty"`
	SuccessMessage    string `json:"successMessage,omitempty"`
	ErrorMessage      string `json:"errorMessage,omitempty"`
	Subject           string `json:"subject,omitempty"`
}

// TabEntry is the content of a single site tab.
type TabEntry struct {
	TabLabel       string          `json:"tabLabel,omitempty"`
	Title          string          `json:"title,omitempty"`
	Body           []BodyBlock     `json:"body,omitempty"`
	Store          *EmbedConfig    `json:"store,omitempty"`
	ContactDetails *ContactDetails `json:"contactDetails,omitempty"`
}

// ContentMap holds every tab keyed by its identifier.
type ContentMap map[string]TabEntry

// Clone deep-copies the map through its JSON form.
func (m ContentMap) Clone() ContentMap {
	if m == nil {
		return nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return ContentMap{}
	}
	var out ContentMap
	if err := json.Unmarshal(data, &out); err != nil {
		return ContentMap{}
	}
	return out
}

// Logo source kinds.
const (
	LogoTypeUpload = "upload"
	LogoTypeURL    = "url"
)

// LogoSettings is the operator-configured site logo. Exactly one of Src
// (inline data URL from an upload) or URL is set; Type records which.
type LogoSettings struct {
	Src  string `json:"src,omitempty"`
	URL  string `json:"url,omitempty"`
	Alt  string `json:"alt,omitempty"`
	Type string `json:"type,omitempty"`
}

// Empty reports whether there is no logo to show.
func (l LogoSettings) Empty() bool { return l.Src == "" && l.URL == "" }

// Source returns whichever image reference is set.
func (l LogoSettings) Source() string {
	if l.Src != "" {
		return l.Src
	}
	return l.URL
}

// DataURL renders image bytes as an inline data URL for the given MIME
// type.
func DataURL(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// CompanySettings styles the masthead company name.
type CompanySettings struct {
	Name  string `json:"name,omitempty"`
	Font  string `json:"font,omitempty"`
	Size  string `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
}

// Empty reports whether no company name is configured.
func (c CompanySettings) Empty() bool { return c.Name == "" }
