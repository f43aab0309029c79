package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrUnsupportedSource is returned for file extensions that cannot be read as text.
	ErrUnsupportedSource = errors.New("unsupported source type")
	// ErrNoText is returned when a document contains no extractable text.
	ErrNoText = errors.New("no extractable text found")
	// ErrTooLarge is returned when a source holds more than MaxTextBytes of text.
	ErrTooLarge = errors.New("text exceeds size limit")
)

// MaxTextBytes caps how much text is read from a single source.
const MaxTextBytes = 32 * 1024 * 1024

// Text is the plain text read from one input.
type Text struct {
	Name  string
	Bytes int64
	Body  string
}

// LoadFile reads a .txt, .md or .pdf file.
func LoadFile(path string) (Text, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		body, err := parsePDF(path)
		if err != nil {
			return Text{}, err
		}
		if len(body) > MaxTextBytes {
			return Text{}, fmt.Errorf("%s: %w", path, ErrTooLarge)
		}
		return Text{Name: path, Bytes: int64(len(body)), Body: body}, nil
	case ".txt", ".md", ".text", "":
		f, err := os.Open(path)
		if err != nil {
			return Text{}, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		return LoadReader(path, f)
	default:
		return Text{}, fmt.Errorf("%w: %s", ErrUnsupportedSource, ext)
	}
}

// LoadReader reads all text from r. Input longer than MaxTextBytes fails with ErrTooLarge.
func LoadReader(name string, r io.Reader) (Text, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxTextBytes+1))
	if err != nil {
		return Text{}, fmt.Errorf("read %s: %w", name, err)
	}
	if len(raw) > MaxTextBytes {
		return Text{}, fmt.Errorf("%s: %w (%d bytes)", name, ErrTooLarge, MaxTextBytes)
	}
	return Text{Name: name, Bytes: int64(len(raw)), Body: string(raw)}, nil
}

// FromString wraps literal text.
func FromString(name, body string) Text {
	return Text{Name: name, Bytes: int64(len(body)), Body: body}
}

func parsePDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	total := r.NumPage()
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		content, pageErr := p.GetPlainText(nil)
		if pageErr != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", fmt.Errorf("%s: %w", path, ErrNoText)
	}
	return b.String(), nil
}
