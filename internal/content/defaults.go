package content

// Tab identifiers in their default display order.
const (
	TabPublishing     = "publishing"
	TabAuthors        = "authors"
	TabSelfPublishing = "selfPublishing"
	TabBookstore      = "bookstore"
	TabContact        = "contact"
)

// DefaultTabOrder lists the tabs as the site renders them.
var DefaultTabOrder = []string{TabPublishing, TabAuthors, TabSelfPublishing, TabBookstore, TabContact}

// Company styling fallbacks used when the operator has not customized the
// masthead.
const (
	DefaultCompanyFont  = "'Inter', sans-serif"
	DefaultCompanySize  = "3rem"
	DefaultCompanyColor = "#f5f7ff"
	DefaultLogoAlt      = "Site logo"
)

// DefaultContent returns the baseline tab content served before any operator
// overrides. Returned as a fresh copy so callers can mutate freely.
func DefaultContent() ContentMap {
	return ContentMap{
		TabPublishing: {
			TabLabel: "Dom Wydawniczy",
			Title:    "Dom Wydawniczy",
			Body: []BodyBlock{
				Paragraph("Nasze wydawnictwo od ponad dwóch dekad wspiera autorów, dostarczając czytelnikom wyjątkowe historie z całego świata."),
				Paragraph("Kładziemy nacisk na staranny dobór tytułów, wysoką jakość redakcji oraz partnerską współpracę z twórcami."),
				List(
					"Główne gatunki: literatura piękna, reportaż, literatura dziecięca",
					"Wyróżnienia międzynarodowych targów książki i nagrody branżowe",
					"Sieć partnerów dystrybucyjnych obejmująca księgarnie stacjonarne i online",
				),
			},
		},
		TabAuthors: {
			TabLabel: "Dla Autorów",
			Title:    "Dla Autorów",
			Body: []BodyBlock{
				Paragraph("Zapewniamy kompleksową opiekę redakcyjną i marketingową – od pierwszej wersji manuskryptu po premierę rynkową."),
				List(
					"Program mentorski dla debiutujących autorów",
					"Spotkania pitchingowe z zespołem redakcyjnym co miesiąc",
					"Szczegółowe wytyczne dotyczące przygotowania propozycji wydawniczej",
				),
			},
		},
		TabSelfPublishing: {
			TabLabel: "Self-publishing",
			Title:    "Self-publishing",
			Body: []BodyBlock{
				Paragraph("Oferujemy modułowe pakiety druku na żądanie, dystrybucji i promocji dla niezależnych twórców."),
				List(
					"Usługi korekty, składu oraz przygotowania e-booków",
					"Dostęp do globalnych platform sprzedażowych",
					"Szkolenia z budowania strategii marketingowej dla autorów",
				),
			},
		},
		TabBookstore: {
			TabLabel: "Księgarnia",
			Title:    "Księgarnia",
			Body: []BodyBlock{
				Paragraph("Kuratorujemy kolekcje tematyczne, które zmieniają się wraz z sezonem i trendami czytelniczymi."),
				List(
					"Limitowane edycje z autografami autorów",
					"Indywidualne rekomendacje przygotowywane przez zespół księgarzy",
					"Wydarzenia i kluby książki integrujące lokalną społeczność",
				),
			},
			Store: &EmbedConfig{
				Type:        "sellastic",
				ContainerID: "my-store-125179016",
				ScriptURL:   "https://app.sellastik.store/script.js?125179016&data_platform=code&data_date=2025-10-11",
				Arguments: []string{
					"categoriesPerRow=3",
					"views=grid(20,3) list(60) table(60)",
					"categoryView=grid",
					"searchView=list",
					"id=my-store-125179016",
				},
				LoadingMessage: "Ładowanie księgarni…",
				ErrorMessage:   "Nie udało się załadować księgarni. Spróbuj ponownie później.",
			},
		},
		TabContact: {
			TabLabel: "Kontakt",
			Title:    "Kontakt",
			Body: []BodyBlock{
				Paragraph("Skorzystaj z formularza lub danych kontaktowych, aby skonsultować współpracę wydawniczą, prawa autorskie czy propozycje partnerstw."),
			},
			ContactDetails: &ContactDetails{
				PhoneLabel:        "Telefon",
				PhoneNumber:       "+48 123 456 789",
				EmailLabel:        "E-mail",
				EmailAddress:      "kontakt@twojwydawnictwo.pl",
				SubmittingMessage: "Wysyłanie wiadomości…",
				SuccessMessage:    "Dziękujemy! Skontaktujemy się wkrótce.",
				ErrorMessage:      "Przepraszamy, wystąpił błąd. Spróbuj ponownie później.",
				Subject:           "Nowa wiadomość ze strony wydawnictwa",
			},
		},
	}
}
