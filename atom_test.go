package main

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestRebuildFeed(t *testing.T) {
	s := newTestSite(t)
	for _, d := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		saveTestArticle(t, s, d, "article for "+d)
	}

	if err := s.RebuildFeed(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("RebuildFeed failed: %v", err)
	}

	raw, err := os.ReadFile(s.conf.outPath(s.conf.FeedFile))
	if err != nil {
		t.Fatalf("Failed to read feed: %v", err)
	}
	feed := string(raw)

	if n := strings.Count(feed, "<entry"); n != 3 {
		t.Errorf("Expected 3 entries, got %d", n)
	}
	if !strings.Contains(feed, "https://example.com/site/articles/2024-01-02.html") {
		t.Error("Expected article link in feed")
	}
	newest := strings.Index(feed, "articles/2024-01-03.html")
	oldest := strings.Index(feed, "articles/2024-01-01.html")
	if newest == -1 || oldest == -1 || newest > oldest {
		t.Error("Expected newest article first")
	}
}

func TestRebuildFeedCapsEntries(t *testing.T) {
	s := newTestSite(t)
	s.conf.FeedEntries = 1
	saveTestArticle(t, s, "2024-01-01", "old")
	saveTestArticle(t, s, "2024-01-02", "new")

	if err := s.RebuildFeed(time.Now()); err != nil {
		t.Fatalf("RebuildFeed failed: %v", err)
	}

	raw, _ := os.ReadFile(s.conf.outPath(s.conf.FeedFile))
	if n := strings.Count(string(raw), "<entry"); n != 1 {
		t.Errorf("Expected 1 entry, got %d", n)
	}
	if strings.Contains(string(raw), "2024-01-01.html") {
		t.Error("Expected the oldest article to be left out")
	}
}

func TestRebuildFeedDisabled(t *testing.T) {
	s := newTestSite(t)
	s.conf.FeedFile = ""

	if err := s.RebuildFeed(time.Now()); err != nil {
		t.Fatalf("RebuildFeed failed: %v", err)
	}
	if _, err := os.Stat(s.conf.outPath("feed.xml")); !os.IsNotExist(err) {
		t.Error("Expected no feed to be written")
	}
}
