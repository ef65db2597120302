package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	atom "github.com/thomas11/atomgenerator"
)

// RebuildFeed regenerates the Atom feed with the newest stored articles. It
// does nothing when no feed file is configured.
func (s *Site) RebuildFeed(now time.Time) error {
	if len(s.conf.FeedFile) == 0 {
		return nil
	}

	atomXml, err := s.renderFeed(now)
	if err != nil {
		return err
	}
	if err := s.writeOutput(s.conf.FeedFile, "text/xml", atomXml); err != nil {
		return err
	}
	s.log.WithField("path", s.conf.outPath(s.conf.FeedFile)).Info("feed rebuilt")
	return nil
}

func (s *Site) renderFeed(now time.Time) ([]byte, error) {
	dates, err := s.sortedArticles()
	if err != nil {
		return nil, err
	}
	if len(dates) > s.conf.FeedEntries {
		dates = dates[:s.conf.FeedEntries]
	}

	feed := atom.Feed{
		Title:   s.conf.SiteTitle,
		Link:    s.conf.BaseUrl,
		PubDate: now,
	}
	feed.AddAuthor(atom.Author{
		Name: s.conf.Author,
		Uri:  s.conf.AuthorUri,
	})

	for _, d := range dates {
		e, err := s.entryForArticle(d)
		if err != nil {
			return nil, err
		}
		feed.AddEntry(e)
	}

	errs := feed.Validate()
	if len(errs) > 0 {
		for _, e := range errs {
			s.log.WithError(e).Error("atom feed is not valid")
		}
		return nil, fmt.Errorf("%w: atom feed: %w", ErrRender, errs[0])
	}

	out, err := feed.GenXml()
	if err != nil {
		return nil, fmt.Errorf("%w: atom feed: %w", ErrRender, err)
	}
	return out, nil
}

// entryForArticle reads a stored page back and takes the entry's content from
// its content root and the summary from its meta description.
func (s *Site) entryForArticle(date string) (*atom.Entry, error) {
	page, err := s.store.Read(date)
	if err != nil {
		return nil, err
	}
	pubDate, err := extractDateFromFilename(date)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("%w: article %s: %w", ErrParse, date, err)
	}
	content := doc.Find("#" + s.conf.ContentRootId).First()
	if content.Length() == 0 {
		content = doc.Find("body").First()
	}
	body, err := content.Html()
	if err != nil {
		return nil, fmt.Errorf("%w: article %s: %w", ErrParse, date, err)
	}

	description, _ := doc.Find(`meta[name="description"]`).Attr("content")
	if len(description) == 0 {
		description = s.articleTitle(date)
	}

	return &atom.Entry{
		Title:       s.articleTitle(date),
		Description: description,
		Link:        s.conf.BaseUrl + s.articleHref(date),
		PubDate:     pubDate,
		Content:     body,
	}, nil
}
