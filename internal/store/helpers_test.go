package store_test

import "github.com/dmitrymomot/glossary/internal/reference"

var consts = reference.Constants{ChapterBaseURL: "https://example.edu/jones/"}
