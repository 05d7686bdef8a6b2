package site

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"regexp"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Olga-Zydziak/website-of-publishing-house/internal/config"
	"github.com/Olga-Zydziak/website-of-publishing-house/internal/content"
	"github.com/Olga-Zydziak/website-of-publishing-house/internal/embed"
	"github.com/Olga-Zydziak/website-of-publishing-house/internal/store"
	"github.com/Olga-Zydziak/website-of-publishing-house/internal/theme"
)

// Site renders the public pages: the tabbed portfolio, the theme
// stylesheet, and the contact submission endpoint.
type Site struct {
	runtime    *config.Runtime
	store      *store.Store
	loader     *embed.Loader
	applicator *theme.Applicator
	submitter  Submitter
	page       *template.Template
}

// New creates the public site.
func New(runtime *config.Runtime, st *store.Store, submitter Submitter) *Site {
	return &Site{
		runtime:    runtime,
		store:      st,
		loader:     embed.NewLoader(),
		applicator: theme.NewApplicator(),
		submitter:  submitter,
		page:       template.Must(template.New("page").Parse(pageTemplate)),
	}
}

// RegisterRoutes mounts the public endpoints on the given router.
func RegisterRoutes(r chi.Router, s *Site) {
	r.Get("/", s.handlePage)
	r.Get("/styles.css", s.handleBaseStylesheet)
	r.Get("/theme.css", s.handleThemeStylesheet)
	r.Post("/api/contact", s.handleContact)
}

// EffectiveContent merges stored overrides onto the default tab content and
// normalizes the contact tab. Unreadable overrides degrade to the defaults.
func (s *Site) EffectiveContent() content.ContentMap {
	merged, err := content.MergeContent(content.DefaultContent(), s.store.LoadTabContent())
	if err != nil {
		log.Printf("site: merging content overrides: %v", err)
		merged = content.DefaultContent()
	}

	if contact, ok := merged[content.TabContact]; ok {
		contact.ContactDetails = content.NormalizeContactDetails(contact.ContactDetails)
		merged[content.TabContact] = contact
	}
	return merged
}

// EffectiveTheme layers saved overrides on the config seed and fills in the
// derived tokens.
func (s *Site) EffectiveTheme() theme.Snapshot {
	snapshot := s.runtime.Current().ThemeSeed()
	for token, value := range s.store.LoadThemeOverrides() {
		snapshot[token] = value
	}
	return theme.Derive(snapshot)
}

func (s *Site) handlePage(w http.ResponseWriter, r *http.Request) {
	cfg := s.runtime.Current()
	contentMap := s.EffectiveContent()

	activeKey := r.URL.Query().Get("tab")
	if _, ok := contentMap[activeKey]; !ok {
		activeKey = cfg.DefaultTab
	}
	if _, ok := contentMap[activeKey]; !ok {
		activeKey = content.TabPublishing
	}

	data := s.pageData(cfg, contentMap, activeKey, r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, data); err != nil {
		log.Printf("site: rendering page: %v", err)
	}
}

func (s *Site) handleBaseStylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(baseStylesheet))
}

// handleThemeStylesheet serves the override layer. Tokens without an
// override are omitted so the base stylesheet's values apply.
func (s *Site) handleThemeStylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Write([]byte(s.applicator.Apply(s.EffectiveTheme())))
}

// tabView is one entry in the tab strip.
type tabView struct {
	Key    string
	Label  string
	Active bool
}

// storeView carries everything the embedded storefront snippet needs.
type storeView struct {
	ContainerID    string
	ScriptURL      string
	Arguments      []string
	LoadingMessage string
	ErrorMessage   string
	DelaysMS       []int64
	Initializer    string
	Unavailable    bool
}

// contactFormView captures the form copy for the active contact tab.
type contactFormView struct {
	Details   *content.ContactDetails
	Tel       string
	MaxFiles  int
	MaxFileMB int
	MaxTotal  int
}

var telStrip = regexp.MustCompile(`[^+\d]`)

// companyView is the masthead heading with its inline style prebuilt, since
// the quoted font stack would not survive the template's CSS sanitizer.
type companyView struct {
	Name  string
	Style template.CSS
}

type pageData struct {
	SiteName string
	Logo     *content.LogoSettings
	Company  *companyView
	Tabs     []tabView
	Active   string
	Title    string
	Body     []content.BodyBlock
	Contact  *contactFormView
	Store    *storeView
}

func (s *Site) pageData(cfg *config.Config, contentMap content.ContentMap, activeKey string, r *http.Request) pageData {
	entry := contentMap[activeKey]

	data := pageData{
		SiteName: cfg.SiteName,
		Logo:     s.store.LoadLogo(),
		Company:  s.companySettings(cfg),
		Active:   activeKey,
		Title:    entry.Title,
		Body:     entry.Body,
	}

	for _, key := range content.DefaultTabOrder {
		tab, ok := contentMap[key]
		if !ok {
			continue
		}
		label := tab.TabLabel
		if label == "" {
			label = tab.Title
		}
		data.Tabs = append(data.Tabs, tabView{Key: key, Label: label, Active: key == activeKey})
	}

	if entry.ContactDetails != nil {
		data.Contact = &contactFormView{
			Details:   entry.ContactDetails,
			Tel:       telStrip.ReplaceAllString(entry.ContactDetails.PhoneNumber, ""),
			MaxFiles:  maxAttachmentFiles,
			MaxFileMB: maxFileMB,
			MaxTotal:  maxTotalMB,
		}
	}

	if entry.Store != nil {
		data.Store = s.storeView(r, entry.Store)
	}

	return data
}

func (s *Site) companySettings(cfg *config.Config) *companyView {
	if !cfg.Manager.EnableCompany {
		return nil
	}
	company := s.store.LoadCompany()
	if company == nil || company.Empty() {
		return nil
	}
	if company.Font == "" {
		company.Font = content.DefaultCompanyFont
	}
	if company.Size == "" {
		company.Size = content.DefaultCompanySize
	}
	if company.Color == "" {
		company.Color = content.DefaultCompanyColor
	}
	style := fmt.Sprintf("font-family: %s; font-size: %s; color: %s", company.Font, company.Size, company.Color)
	return &companyView{Name: company.Name, Style: template.CSS(style)}
}

// storeView prefetches the storefront script so an unreachable widget shows
// its failure copy immediately instead of a loading message that never
// resolves. The page still embeds the script client-side; the prefetch only
// decides which copy to render.
func (s *Site) storeView(r *http.Request, cfg *content.EmbedConfig) *storeView {
	containerID := embed.ContainerID(cfg)

	view := &storeView{
		ContainerID:    containerID,
		ScriptURL:      cfg.ScriptURL,
		Arguments:      embed.Arguments(cfg, containerID),
		LoadingMessage: embed.LoadingMessage(cfg),
		ErrorMessage:   embed.ErrorMessage(cfg),
		Initializer:    embed.InitializerName,
	}

	for attempt := 0; ; attempt++ {
		delay, ok := embed.NextDelay(attempt)
		if !ok {
			break
		}
		view.DelaysMS = append(view.DelaysMS, delay.Milliseconds())
	}

	ctx, cancel := contextWithTimeout(r, 5*time.Second)
	defer cancel()
	if err := s.loader.Prepare(ctx, cfg.ScriptURL); err != nil {
		log.Printf("site: storefront script unavailable: %v", err)
		view.Unavailable = true
	}

	return view
}
