package htmltext

import (
	"bytes"
	"io"
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
)

const defaultCharset = "utf-8"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DetectCharset returns the charset label of an HTML body. A BOM or meta
// declaration wins; otherwise the charset is guessed from the bytes.
func DetectCharset(body []byte) string {
	if len(body) == 0 {
		return defaultCharset
	}
	if label := declaredCharset(body); label != "" {
		return label
	}

	result, err := chardet.NewHtmlDetector().DetectBest(body)
	if err != nil || result == nil || result.Charset == "" {
		return defaultCharset
	}
	return strings.ToLower(result.Charset)
}

// declaredCharset reads the charset parameter mimetype attaches to text types.
func declaredCharset(body []byte) string {
	mtype := mimetype.Detect(body)
	if !mtype.Is("text/html") && !mtype.Is("text/plain") {
		return ""
	}
	_, params, err := mime.ParseMediaType(mtype.String())
	if err != nil {
		return ""
	}
	return strings.ToLower(params["charset"])
}

// decode returns a UTF-8 reader over body and the charset it was decoded from.
// Unknown charsets fall back to the raw bytes. A UTF-8 BOM is dropped.
func decode(body []byte) (io.Reader, string) {
	label := DetectCharset(body)
	if label == defaultCharset {
		return bytes.NewReader(bytes.TrimPrefix(body, utf8BOM)), label
	}

	r, err := charset.NewReaderLabel(label, bytes.NewReader(body))
	if err != nil {
		return bytes.NewReader(bytes.TrimPrefix(body, utf8BOM)), defaultCharset
	}
	return r, label
}
