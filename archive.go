package main

import (
	"bytes"
	"fmt"
	"html/template"
	"path"
	"slices"
)

var archiveTemplate = template.Must(template.New("archive").Parse(
	`<h1>{{.Heading}}</h1><h2>Article Archives</h2><ul class="archive">` +
		`{{range .Entries}}<li><a href="{{.Href}}">{{.Date}}</a></li>{{end}}` +
		`</ul><p><a href="{{.Home}}">⬅ Back to Today’s Article</a></p>`))

type archiveEntry struct {
	Date string
	Href string
}

type archiveParam struct {
	Heading string
	Home    string
	Entries []archiveEntry
}

// sortedArticles returns the stored article ids, newest first.
func (s *Site) sortedArticles() ([]string, error) {
	dates, err := s.store.List()
	if err != nil {
		return nil, err
	}
	// Date stamps sort lexically.
	slices.Sort(dates)
	slices.Reverse(dates)
	return dates, nil
}

func (s *Site) articleHref(date string) string {
	return path.Join(s.conf.ArticlesDir, date+articleExt)
}

// RebuildArchive regenerates the archive page from the stored articles.
func (s *Site) RebuildArchive() error {
	dates, err := s.sortedArticles()
	if err != nil {
		return err
	}

	p := archiveParam{
		Heading: s.conf.SiteTitle + " - Archives",
		Home:    s.conf.HomepageFile,
		Entries: make([]archiveEntry, 0, len(dates)),
	}
	for _, d := range dates {
		p.Entries = append(p.Entries, archiveEntry{Date: d, Href: s.articleHref(d)})
	}

	var b bytes.Buffer
	if err := archiveTemplate.Execute(&b, p); err != nil {
		return fmt.Errorf("%w: archive list: %w", ErrRender, err)
	}

	page, err := s.renderPage(s.conf.SiteTitle+" Archives",
		"Browse past daily articles of "+s.conf.SiteTitle+".", b.String(), "")
	if err != nil {
		return err
	}
	if err := s.writeOutput(s.conf.ArchiveFile, "text/html", []byte(page)); err != nil {
		return err
	}
	s.log.WithField("articles", len(dates)).Info("archive rebuilt")
	return nil
}
