package services

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// docxParagraphs returns the text of every w:p element of a WordprocessingML
// body in document order, table cells included. Inside runs w:tab becomes a
// tab and w:br or w:cr a newline.
func docxParagraphs(documentXML string) ([]string, error) {
	decoder := xml.NewDecoder(strings.NewReader(documentXML))

	var (
		paragraphs []string
		open       []*strings.Builder
		elements   []string
	)

	parent := func() string {
		if len(elements) < 2 {
			return ""
		}
		return elements[len(elements)-2]
	}
	write := func(s string) {
		if len(open) > 0 {
			open[len(open)-1].WriteString(s)
		}
	}

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("invalid document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			elements = append(elements, t.Name.Local)
			switch t.Name.Local {
			case "p":
				open = append(open, &strings.Builder{})
			case "tab":
				// w:tabs/w:tab in paragraph properties are tab stops, not text.
				if parent() == "r" {
					write("\t")
				}
			case "br", "cr":
				if parent() == "r" {
					write("\n")
				}
			}
		case xml.EndElement:
			if len(elements) > 0 {
				elements = elements[:len(elements)-1]
			}
			if t.Name.Local == "p" && len(open) > 0 {
				last := open[len(open)-1]
				open = open[:len(open)-1]
				paragraphs = append(paragraphs, last.String())
			}
		case xml.CharData:
			if len(elements) > 0 && elements[len(elements)-1] == "t" {
				write(string(t))
			}
		}
	}

	return paragraphs, nil
}
