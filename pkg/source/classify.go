package source

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/activeintel/iocdb/pkg/data"
)

//Classify maps a provenance URL and its accompanying metadata to a
//provenance record, without ids or timestamps. The mapping is pure
//and total: a structured-intel marker in the metadata wins first,
//then recognized code hosting platforms, and anything left is a
//plain feed keyed by its bare domain.
func Classify(provenanceURL string, sourceMeta map[string]interface{}) Source {
	if isMISP(sourceMeta) {
		// key the platform by its base URL, not the individual event path
		base := provenanceURL
		if idx := strings.LastIndex(provenanceURL, "/"); idx >= 0 {
			base = provenanceURL[:idx+1]
		}
		return Source{
			Type: data.MISPSource,
			Key:  ExtractDomain(base),
			URL:  base,
		}
	}

	if host := urlHost(provenanceURL); strings.Contains(host, "github") {
		user, repoName := gitUserRepo(provenanceURL)
		return bucketSource("github.com", user, repoName)
	} else if strings.Contains(host, "gitlab") {
		user, repoName := gitUserRepo(provenanceURL)
		return bucketSource("gitlab.com", user, repoName)
	}

	return Source{
		Type: data.FeedSource,
		Key:  ExtractDomain(provenanceURL),
	}
}

func isMISP(sourceMeta map[string]interface{}) bool {
	marker, ok := sourceMeta["type"]
	if !ok {
		return false
	}
	return strings.EqualFold(fmt.Sprint(marker), "misp")
}

func bucketSource(host string, user string, repoName string) Source {
	key := host
	repoURL := "https://" + host
	if user != "" {
		key += "/" + user
		repoURL += "/" + user
		if repoName != "" {
			key += "/" + repoName
			repoURL += "/" + repoName
		}
	}
	return Source{
		Type:          data.BucketSource,
		Key:           key,
		URL:           repoURL,
		UserNamespace: user,
		BucketName:    repoName,
	}
}

//gitUserRepo extracts the user namespace and repository name from a
//code hosting URL. Raw github content carries both as leading path
//segments; gitlab pages carry the user as the host's subdomain and
//the repository as the first path segment.
func gitUserRepo(provenanceURL string) (string, string) {
	parsed, err := url.Parse(provenanceURL)
	if err != nil {
		return "", ""
	}
	pathParts := strings.Split(strings.Trim(parsed.Path, "/"), "/")

	if strings.Contains(parsed.Host, "gitlab.io") {
		user := strings.Split(parsed.Host, ".")[0]
		repoName := ""
		if len(pathParts) > 0 {
			repoName = pathParts[0]
		}
		return user, repoName
	}

	if len(pathParts) >= 2 {
		return pathParts[0], pathParts[1]
	}
	return "", ""
}

func urlHost(provenanceURL string) string {
	parsed, err := url.Parse(provenanceURL)
	if err != nil || parsed.Host == "" {
		return ExtractDomain(provenanceURL)
	}
	return parsed.Host
}

//ExtractDomain strips the scheme, a leading www., and any path or
//query from a URL, leaving the bare registrable domain
func ExtractDomain(s string) string {
	s = strings.Replace(s, "https://", "", 1)
	s = strings.Replace(s, "http://", "", 1)
	s = strings.TrimPrefix(s, "www.")
	if idx := strings.Index(s, "/"); idx >= 0 {
		s = s[:idx]
	}
	if idx := strings.Index(s, "?"); idx >= 0 {
		s = s[:idx]
	}
	return strings.ReplaceAll(s, "\"", "")
}
