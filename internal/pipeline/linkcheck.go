package pipeline

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// IndexFile is served for links that point at a directory.
const IndexFile = "index.html"

// BrokenLink is a relative link or image whose target does not exist in the
// published tree.
type BrokenLink struct {
	Page   string // page containing the reference
	Tag    string // "a" or "img"
	Target string // attribute value as written
}

func (b BrokenLink) String() string {
	return fmt.Sprintf("%s: <%s> %s", b.Page, b.Tag, b.Target)
}

// FindBrokenLinks reports a[href] and img[src] references in htmlContent that
// resolve to nothing under root. Relative targets resolve against the
// directory of pagePath, root-relative ("/x") targets against root. URLs and
// anchors are skipped; targets escaping root are always reported.
func FindBrokenLinks(htmlContent, pagePath, root string) ([]BrokenLink, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", pagePath, err)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	absPage, err := filepath.Abs(pagePath)
	if err != nil {
		return nil, err
	}

	var broken []BrokenLink
	goquery.NewDocumentFromNode(doc).Find("a[href], img[src]").Each(func(_ int, s *goquery.Selection) {
		tag := goquery.NodeName(s)
		attr := "href"
		if tag == "img" {
			attr = "src"
		}
		target, _ := s.Attr(attr)
		if !isLocalTarget(target) {
			return
		}
		if !targetExists(target, filepath.Dir(absPage), absRoot) {
			broken = append(broken, BrokenLink{Page: pagePath, Tag: tag, Target: target})
		}
	})
	return broken, nil
}

// isLocalTarget returns true if the reference points into the site itself.
func isLocalTarget(target string) bool {
	if target == "" || strings.HasPrefix(target, "#") || strings.HasPrefix(target, "//") {
		return false
	}
	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	return u.Scheme == "" && u.Host == ""
}

func targetExists(target, pageDir, root string) bool {
	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	p := filepath.FromSlash(u.Path)
	if p == "" {
		// "?q" or "#frag" only: the page itself
		return true
	}

	var abs string
	if strings.HasPrefix(u.Path, "/") {
		abs = filepath.Join(root, p)
	} else {
		abs = filepath.Join(pageDir, p)
	}
	if !isPathUnderDir(abs, root) {
		return false
	}

	info, err := os.Stat(abs)
	if err != nil {
		return false
	}
	if info.IsDir() {
		_, err = os.Stat(filepath.Join(abs, IndexFile))
		return err == nil
	}
	return true
}

// isPathUnderDir checks if absPath is under dir (prevents path traversal).
func isPathUnderDir(absPath, dir string) bool {
	cleanPath := filepath.Clean(absPath)
	cleanDir := filepath.Clean(dir)

	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}

	return strings.HasPrefix(cleanPath+string(filepath.Separator), cleanDir)
}
