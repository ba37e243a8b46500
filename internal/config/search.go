package config

import (
	"os"
	"sync"
)

type SearchConfig struct {
	URL      string
	Username string
	Password string
	Index    string
}

var (
	searchConfig *SearchConfig
	searchOnce   sync.Once
)

func LoadSearchConfig() *SearchConfig {
	searchOnce.Do(func() {
		index := os.Getenv("ELASTIC_INDEX")
		if index == "" {
			index = "candidates"
		}
		url := os.Getenv("ELASTIC_URL")
		if url == "" {
			url = "http://localhost:9200"
		}
		searchConfig = &SearchConfig{
			URL:      url,
			Username: os.Getenv("ELASTIC_USERNAME"),
			Password: os.Getenv("ELASTIC_PASSWORD"),
			Index:    index,
		}
	})
	return searchConfig
}
