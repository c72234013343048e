// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"html/template"
	"net/http"
	"strconv"

	"github.com/MKhiriev/shop-panel/internal/render"
	"github.com/MKhiriev/shop-panel/internal/utils"
	"github.com/MKhiriev/shop-panel/models"
)

const layoutTemplate = `{{define "head"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Shop Admin</title>
{{- if .Refresh}}
<meta http-equiv="refresh" content="{{.Refresh}}">
{{- end}}
</head>
<body>
{{end}}
{{define "foot"}}</body>
</html>
{{end}}`

const loginTemplate = `{{template "head" .}}<main class="login">
<h1>Shop Admin</h1>
<form method="post" action="/login" novalidate>
<label for="email">Email</label>
<input id="email" name="email" type="email" value="{{.Email}}" autocomplete="username">
{{- with .EmailError}}
<span class="field-error">{{.}}</span>
{{- end}}
<label for="password">Password</label>
<input id="password" name="password" type="password" autocomplete="current-password">
{{- with .PasswordError}}
<span class="field-error">{{.}}</span>
{{- end}}
<label><input name="remember" type="checkbox" value="on"{{if .Remember}} checked{{end}}> Remember me</label>
<button type="submit">Sign in</button>
</form>
{{- with .Banner}}
<div class="banner {{if $.BannerOK}}banner-success{{else}}banner-error{{end}}">{{.}}</div>
{{- end}}
</main>
{{template "foot" .}}`

const sectionTemplate = `{{template "head" .}}<header>
<span class="user">{{.Session.DisplayName}}</span>
<form method="post" action="/logout"><button type="submit">Logout</button></form>
</header>
<nav>
{{- range .Tabs}}
<a href="{{.Href}}"{{if .Active}} class="active"{{end}}>{{.Title}}</a>
{{- end}}
</nav>
{{- range .Toasts}}
<div class="toast toast-{{.Kind}}">{{.Message}}</div>
{{- end}}
<section id="{{.Section}}">
<details class="create-form"{{if .FormOpen}} open{{end}}>
<summary>New</summary>
<form method="post" action="{{.FormAction}}" novalidate>
{{- range .Fields}}
<label for="{{.Name}}">{{.Label}}</label>
<input id="{{.Name}}" name="{{.Name}}" type="{{.Type}}" placeholder="{{.Placeholder}}" value="{{.Value}}"{{with .Step}} step="{{.}}"{{end}}{{if .Required}} required{{end}}>
{{- end}}
<button type="submit">Save</button>
</form>
</details>
<div class="grid">{{.Grid}}</div>
</section>
<script>
document.addEventListener('click', function (e) {
  var btn = e.target.closest('.btn-danger');
  if (!btn || !window.confirm(btn.dataset.prompt)) return;
  var f = document.createElement('form');
  f.method = 'post';
  f.action = '/sections/' + btn.dataset.section + '/' + btn.dataset.id + '/delete';
  var c = document.createElement('input');
  c.type = 'hidden';
  c.name = 'confirm';
  c.value = 'yes';
  f.appendChild(c);
  document.body.appendChild(f);
  f.submit();
});
setTimeout(function () {
  document.querySelectorAll('.toast').forEach(function (t) { t.remove(); });
}, {{.ToastMillis}});
</script>
{{template "foot" .}}`

const confirmTemplate = `{{template "head" .}}<main class="confirm">
<p>{{.Prompt}}</p>
<form method="post" action="{{.Action}}">
<input type="hidden" name="confirm" value="yes">
<button type="submit" class="btn-danger">Delete</button>
<a href="{{.Back}}">Cancel</a>
</form>
</main>
{{template "foot" .}}`

var pages = struct {
	login   *template.Template
	section *template.Template
	confirm *template.Template
}{
	login:   mustPage("login", loginTemplate),
	section: mustPage("section", sectionTemplate),
	confirm: mustPage("confirm", confirmTemplate),
}

func mustPage(name, body string) *template.Template {
	t := template.Must(template.New(name).Parse(layoutTemplate))
	return template.Must(t.New(name + "-body").Parse(body))
}

type loginPage struct {
	Refresh       string
	Email         string
	Remember      bool
	EmailError    string
	PasswordError string
	Banner        string
	BannerOK      bool
}

type tab struct {
	Title  string
	Href   string
	Active bool
}

type formInput struct {
	Name        string
	Label       string
	Placeholder string
	Type        string
	Step        string
	Value       string
	Required    bool
}

type sectionPage struct {
	Refresh     string
	Session     models.Session
	Section     models.Section
	Tabs        []tab
	Toasts      []models.Toast
	FormOpen    bool
	FormAction  string
	Fields      []formInput
	Grid        template.HTML
	ToastMillis int64
}

type confirmPage struct {
	Refresh string
	Prompt  string
	Action  string
	Back    string
}

func sectionPath(section models.Section) string {
	return "/sections/" + string(section)
}

func deletePath(section models.Section, id int64) string {
	return sectionPath(section) + "/" + strconv.FormatInt(id, 10) + "/delete"
}

func tabs(active models.Section) []tab {
	out := make([]tab, 0, len(models.Sections()))
	for _, s := range models.Sections() {
		out = append(out, tab{Title: s.Title(), Href: sectionPath(s), Active: s == active})
	}
	return out
}

// formInputs builds the create form of section. values, when not nil, are
// echoed back so a failed submit keeps what the admin typed. Secrets are
// never echoed.
func formInputs(section models.Section, values models.Form) []formInput {
	fields := render.FormFields(section)
	out := make([]formInput, 0, len(fields))
	for _, f := range fields {
		in := formInput{
			Name:        f.Name,
			Label:       f.Label,
			Placeholder: f.Placeholder,
			Required:    f.Required,
		}
		switch f.Kind {
		case render.InputEmail:
			in.Type = "email"
		case render.InputSecret:
			in.Type = "password"
		case render.InputNumber:
			in.Type, in.Step = "number", "1"
		case render.InputDecimal:
			in.Type, in.Step = "number", "0.01"
		default:
			in.Type = "text"
		}
		if f.Kind != render.InputSecret {
			in.Value = values[f.Name]
		}
		out = append(out, in)
	}
	return out
}

func (h *Handler) writePage(w http.ResponseWriter, r *http.Request, page *template.Template, data any, status int) {
	var buf bytes.Buffer
	if err := page.ExecuteTemplate(&buf, page.Name(), data); err != nil {
		h.logger.Err(err).Str("func", "*Handler.writePage").Msg("failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if _, err := utils.WriteHTML(w, buf.String(), status); err != nil {
		h.logger.Err(err).Str("func", "*Handler.writePage").Str("uri", r.RequestURI).Msg("failed to write page")
	}
}
