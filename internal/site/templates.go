package site

// pageTemplate is the Go html/template for the public site.
const pageTemplate = `<!DOCTYPE html>
<html lang="pl">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} — {{.SiteName}}</title>
  <link rel="stylesheet" href="/styles.css">
  <link rel="stylesheet" href="/theme.css">
</head>
<body>
  <header class="masthead">
    {{if .Logo}}<a class="masthead__logo-link" href="/"><img class="masthead__logo" src="{{.Logo.Source}}" alt="{{if .Logo.Alt}}{{.Logo.Alt}}{{else}}Site logo{{end}}"></a>{{end}}
    {{if .Company}}
    <h1 class="masthead__company" style="{{.Company.Style}}">{{.Company.Name}}</h1>
    {{else}}
    <h1 class="masthead__company">{{.SiteName}}</h1>
    {{end}}
  </header>

  <nav class="tabs" aria-label="Sekcje strony">
    {{range .Tabs}}
    <a class="tabs__button{{if .Active}} tabs__button--active{{end}}" href="/?tab={{.Key}}"{{if .Active}} aria-current="page"{{end}}>{{.Label}}</a>
    {{end}}
  </nav>

  <main class="panels">
    <section class="panels__panel" id="tab-panel" aria-live="polite">
      <h2 class="panels__title" id="tab-panel-title">{{.Title}}</h2>
      <div class="panels__body" id="tab-panel-body">
        {{range .Body}}
        {{if eq .Type "list"}}
        <ul class="panels__list">
          {{range .Items}}<li class="panels__list-item">{{.}}</li>
          {{end}}
        </ul>
        {{else}}
        <p class="panels__text">{{.Text}}</p>
        {{end}}
        {{end}}

        {{if .Contact}}{{template "contact" .Contact}}{{end}}
        {{if .Store}}{{template "store" .Store}}{{end}}
      </div>
    </section>
  </main>
</body>
</html>

{{define "contact"}}
<div class="panels__contact">
  <dl class="panels__contact-list">
    {{if and .Details.PhoneLabel .Details.PhoneNumber}}
    <dt class="panels__contact-term">{{.Details.PhoneLabel}}</dt>
    <dd class="panels__contact-definition"><a class="panels__contact-link" href="tel:{{.Tel}}">{{.Details.PhoneNumber}}</a></dd>
    {{end}}
    {{if and .Details.EmailLabel .Details.EmailAddress}}
    <dt class="panels__contact-term">{{.Details.EmailLabel}}</dt>
    <dd class="panels__contact-definition"><a class="panels__contact-link" href="mailto:{{.Details.EmailAddress}}">{{.Details.EmailAddress}}</a></dd>
    {{end}}
  </dl>

  <form class="panels__contact-form" id="contact-form" method="post" action="/api/contact" enctype="multipart/form-data">
    <label class="panels__contact-label" for="contact-name">Imię i nazwisko</label>
    <input class="panels__contact-input" id="contact-name" name="name" type="text" autocomplete="name" required>

    <label class="panels__contact-label" for="contact-email">E-mail</label>
    <input class="panels__contact-input" id="contact-email" name="email" type="email" autocomplete="email" required>

    <label class="panels__contact-label" for="contact-message">Wiadomość</label>
    <textarea class="panels__contact-input" id="contact-message" name="message" rows="6" required></textarea>

    <label class="panels__contact-label" for="contact-attachments">Załączniki (maks. {{.MaxFiles}} plików, {{.MaxFileMB}} MB każdy, {{.MaxTotal}} MB łącznie)</label>
    <input class="panels__contact-input" id="contact-attachments" name="attachments" type="file" multiple>

    <button class="panels__contact-submit" type="submit">Wyślij wiadomość</button>
    <p class="panels__contact-status" id="contact-status" role="status" aria-live="polite" hidden></p>
  </form>
</div>
<script>
(function () {
  var form = document.getElementById('contact-form');
  var status = document.getElementById('contact-status');
  if (!form || !status) { return; }

  form.addEventListener('submit', function (event) {
    event.preventDefault();
    status.hidden = false;
    status.textContent = {{.Details.SubmittingMessage}};

    fetch(form.action, { method: 'POST', body: new FormData(form) })
      .then(function (response) { return response.json(); })
      .then(function (outcome) {
        status.textContent = outcome.message;
        if (outcome.status !== 'error') { form.reset(); }
      })
      .catch(function () {
        status.textContent = {{.Details.ErrorMessage}};
      });
  });
})();
</script>
{{end}}

{{define "store"}}
<div class="panels__store">
  <div class="panels__store-frame" id="{{.ContainerID}}"></div>
  <p class="panels__store-status" id="{{.ContainerID}}-status" role="status" aria-live="polite">{{if .Unavailable}}{{.ErrorMessage}}{{else}}{{.LoadingMessage}}{{end}}</p>
</div>
{{if not .Unavailable}}
<script>
(function () {
  var status = document.getElementById('{{.ContainerID}}-status');
  var args = {{.Arguments}};
  var delays = {{.DelaysMS}};

  function fail() {
    if (status) { status.hidden = false; status.textContent = {{.ErrorMessage}}; }
  }

  function initialise(attempt) {
    if (typeof window[{{.Initializer}}] === 'function') {
      window[{{.Initializer}}].apply(null, args);
      if (status) { status.hidden = true; }
      return;
    }
    if (attempt >= delays.length) { fail(); return; }
    window.setTimeout(function () { initialise(attempt + 1); }, delays[attempt]);
  }

  var script = document.createElement('script');
  script.src = {{.ScriptURL}};
  script.async = true;
  script.charset = 'utf-8';
  script.addEventListener('load', function () { initialise(0); });
  script.addEventListener('error', fail);
  document.head.appendChild(script);
})();
</script>
{{end}}
{{end}}`

// baseStylesheet carries the token defaults; /theme.css overrides them.
const baseStylesheet = `:root {
  --color-background: #0f1117;
  --color-surface: #161a23;
  --color-surface-alt: #1d2330;
  --color-accent: #5a8dee;
  --color-accent-muted: rgba(90, 141, 238, 0.12);
  --color-accent-rgb: 90, 141, 238;
  --color-text-primary: #f5f7ff;
  --color-text-secondary: #a8b0c2;
  --shadow-elevated: 0 20px 45px rgba(6, 9, 19, 0.45);
  --page-shade-direction: to bottom;
  --page-shade-strength: 0.18;
  --page-shade-soft: 0.06;
  --page-shade-panel: 0.11;
  --tabs-size-scale: 1;
}

* {
  box-sizing: border-box;
}

body {
  margin: 0;
  min-height: 100vh;
  font-family: 'Inter', 'Segoe UI', sans-serif;
  color: var(--color-text-primary);
  background:
    linear-gradient(var(--page-shade-direction), rgba(6, 9, 19, var(--page-shade-strength)), rgba(6, 9, 19, var(--page-shade-soft))),
    var(--color-background);
}

.masthead {
  display: flex;
  align-items: center;
  gap: 1.25rem;
  padding: 2.5rem 1.5rem 1rem;
  max-width: 960px;
  margin: 0 auto;
}

.masthead__logo {
  max-height: 72px;
  display: block;
}

.masthead__company {
  margin: 0;
  font-size: 3rem;
  letter-spacing: 0.02em;
}

.tabs {
  display: flex;
  flex-wrap: wrap;
  gap: 0.5rem;
  max-width: 960px;
  margin: 0 auto;
  padding: 0 1.5rem;
}

.tabs__button {
  padding: calc(0.65rem * var(--tabs-size-scale)) calc(1.1rem * var(--tabs-size-scale));
  font-size: calc(1rem * var(--tabs-size-scale));
  color: var(--color-text-secondary);
  background: var(--color-surface);
  border: 1px solid transparent;
  border-radius: 999px;
  text-decoration: none;
  transition: color 0.2s ease, background 0.2s ease;
}

.tabs__button:hover {
  color: var(--color-text-primary);
  background: var(--color-surface-alt);
}

.tabs__button--active {
  color: var(--color-text-primary);
  background: var(--color-accent-muted);
  border-color: rgba(var(--color-accent-rgb), 0.55);
}

.panels {
  max-width: 960px;
  margin: 1.5rem auto 4rem;
  padding: 0 1.5rem;
}

.panels__panel {
  background: linear-gradient(var(--page-shade-direction), rgba(6, 9, 19, var(--page-shade-panel)), transparent), var(--color-surface);
  border-radius: 18px;
  padding: 2rem;
  box-shadow: var(--shadow-elevated);
}

.panels__title {
  margin-top: 0;
  font-size: 1.9rem;
}

.panels__text {
  color: var(--color-text-secondary);
  line-height: 1.7;
}

.panels__list {
  margin: 1rem 0;
  padding-left: 1.4rem;
}

.panels__list-item {
  color: var(--color-text-secondary);
  line-height: 1.7;
  margin-bottom: 0.35rem;
}

.panels__contact {
  margin-top: 1.5rem;
}

.panels__contact-list {
  display: grid;
  grid-template-columns: auto 1fr;
  gap: 0.4rem 1.2rem;
  margin: 0 0 1.5rem;
}

.panels__contact-term {
  color: var(--color-text-secondary);
}

.panels__contact-definition {
  margin: 0;
}

.panels__contact-link {
  color: var(--color-accent);
  text-decoration: none;
}

.panels__contact-link:hover {
  text-decoration: underline;
}

.panels__contact-form {
  display: flex;
  flex-direction: column;
  gap: 0.5rem;
  max-width: 480px;
}

.panels__contact-label {
  color: var(--color-text-secondary);
  font-size: 0.9rem;
}

.panels__contact-input {
  padding: 0.6rem 0.8rem;
  color: var(--color-text-primary);
  background: var(--color-surface-alt);
  border: 1px solid rgba(var(--color-accent-rgb), 0.25);
  border-radius: 10px;
  font: inherit;
}

.panels__contact-input:focus {
  outline: 2px solid var(--color-accent);
  outline-offset: 1px;
}

.panels__contact-submit {
  margin-top: 0.75rem;
  padding: 0.7rem 1.4rem;
  color: var(--color-text-primary);
  background: var(--color-accent);
  border: none;
  border-radius: 999px;
  font: inherit;
  cursor: pointer;
}

.panels__contact-submit:hover {
  filter: brightness(1.1);
}

.panels__contact-status {
  color: var(--color-text-secondary);
  min-height: 1.2em;
}

.panels__store {
  margin-top: 1.5rem;
}

.panels__store-frame {
  min-height: 200px;
}

.panels__store-status {
  color: var(--color-text-secondary);
}
`
