package pipeline

import (
	"encoding/base64"
	"errors"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// MaxInlineImageSize bounds the size of an image InlineImages will embed.
const MaxInlineImageSize = 4 << 20

// InlineImages replaces relative <img src> paths in an HTML fragment with
// data URIs read from sourceDir. Images that are missing, too large, of
// unknown type or outside sourceDir keep their original src. If sourceDir
// is empty the fragment is returned unchanged.
//
// Not rewritten:
//   - a[href] (links keep pointing at the original files)
//   - srcset
//   - URLs, anchors and absolute paths
func InlineImages(fragment, sourceDir string) (string, error) {
	if sourceDir == "" {
		return fragment, nil
	}

	absSourceDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", err
	}
	if realDir, err := filepath.EvalSymlinks(absSourceDir); err == nil {
		absSourceDir = realDir
	}

	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	for _, n := range nodes {
		inlineNode(n, absSourceDir)
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func inlineNode(n *html.Node, sourceDir string) {
	if n.Type == html.ElementNode && n.DataAtom == atom.Img {
		for i, attr := range n.Attr {
			if attr.Key != "src" || !isRelativePath(attr.Val) {
				continue
			}
			if uri, err := imageDataURI(filepath.Join(sourceDir, filepath.FromSlash(attr.Val)), sourceDir); err == nil {
				n.Attr[i].Val = uri
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		inlineNode(c, sourceDir)
	}
}

var (
	errOutsideSource = errors.New("image outside source directory")
	errImageTooLarge = errors.New("image too large to inline")
	errUnknownType   = errors.New("unknown image type")
)

// imageDataURI reads the image at path and encodes it as a data URI.
// Symlinks are resolved before the containment check.
func imageDataURI(path, sourceDir string) (string, error) {
	realPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", err
	}
	if !isPathUnderDir(realPath, sourceDir) {
		return "", errOutsideSource
	}
	path = realPath
	mediaType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if !strings.HasPrefix(mediaType, "image/") {
		return "", errUnknownType
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.Size() > MaxInlineImageSize {
		return "", errImageTooLarge
	}
	data, err := os.ReadFile(path) // #nosec G304 -- containment checked above
	if err != nil {
		return "", err
	}
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = mediaType[:i]
	}
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// isRelativePath reports whether path refers to a file relative to the notes.
func isRelativePath(path string) bool {
	if path == "" || strings.HasPrefix(path, "#") || strings.HasPrefix(path, "//") {
		return false
	}
	if strings.Contains(path, "://") || strings.HasPrefix(path, "data:") {
		return false
	}
	return !filepath.IsAbs(path) && !strings.HasPrefix(path, "/")
}

// isPathUnderDir checks that absPath does not escape dir.
func isPathUnderDir(absPath, dir string) bool {
	cleanDir := filepath.Clean(dir)
	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}
	return strings.HasPrefix(filepath.Clean(absPath)+string(filepath.Separator), cleanDir)
}
