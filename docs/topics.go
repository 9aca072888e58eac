// Package docs holds the user documentation of coinmon, as markdown topics.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed *.md
var docs embed.FS

// GetTopic returns the content of a documentation topic.
func GetTopic(topic string) (string, error) {
	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics returns the content of multiple topics concatenated together.
// "*" stands for all the topics.
func GetTopics(topics ...string) (string, error) {
	var expanded []string
	for _, topic := range topics {
		if topic != "*" {
			expanded = append(expanded, topic)
			continue
		}
		all, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		expanded = append(expanded, all...)
	}

	var b strings.Builder
	for _, topic := range expanded {
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics returns the sorted list of topics, readme excluded.
func GetAllTopics() ([]string, error) {
	entries, err := fs.ReadDir(docs, ".")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, e := range entries {
		base := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		if e.IsDir() || base == "readme" {
			continue
		}
		topics = append(topics, base)
	}
	sort.Strings(topics)
	return topics, nil
}
