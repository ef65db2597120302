package main

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type dailyArticle struct {
	Date        string
	Terms       []string
	Text        string
	Description string
	// Empty when no image could be found.
	ImageUrl string
}

var fragmentTemplate = template.Must(template.New("fragment").Parse(
	`<h2>{{.Heading}}</h2>{{if .ImageUrl}}<img src="{{.ImageUrl}}" alt="{{.Term}} image">{{end}}{{.Body}}`))

type fragmentParam struct {
	Heading  string
	ImageUrl string
	Term     string
	Body     template.HTML
}

// fragment assembles the HTML that goes into both the article page and the
// homepage's daily article region.
func (s *Site) fragment(a *dailyArticle) (string, error) {
	p := fragmentParam{
		Heading:  s.articleTitle(a.Date),
		ImageUrl: a.ImageUrl,
		Body:     template.HTML(s.toHtml.render([]byte(a.Text))),
	}
	if len(a.Terms) > 0 {
		p.Term = a.Terms[0]
	}

	var b bytes.Buffer
	if err := fragmentTemplate.Execute(&b, p); err != nil {
		return "", fmt.Errorf("%w: article fragment: %w", ErrRender, err)
	}
	return b.String(), nil
}

// plainText is the generated text as a reader sees it, without Markdown
// syntax.
func (s *Site) plainText(markdown string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s.toHtml.render([]byte(markdown))))
	if err != nil {
		return markdown
	}
	return doc.Text()
}

func (s *Site) articleTitle(date string) string {
	return s.conf.SiteTitle + " - " + date
}

func (a *dailyArticle) String() string {
	b := new(strings.Builder)
	b.WriteString("date: ")
	b.WriteString(a.Date)
	b.WriteString("\nterms: ")
	b.WriteString(strings.Join(a.Terms, ", "))
	b.WriteString("\nimage: ")
	b.WriteString(a.ImageUrl)
	b.WriteString("\ndescription: ")
	b.WriteString(a.Description)
	return b.String()
}

// articlePrompt fills the terms into the {terms} placeholder of prompt.
func articlePrompt(prompt string, terms []string) string {
	return strings.ReplaceAll(prompt, "{terms}", strings.Join(terms, ", "))
}
