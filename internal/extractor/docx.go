package extractor

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// maxDocumentXML caps how much of word/document.xml is inflated.
const maxDocumentXML = 32 << 20

func ExtractDOCX(data []byte) (string, error) {
	reader := bytes.NewReader(data)

	zipReader, err := zip.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read DOCX as ZIP: %w", err)
	}

	var documentFile *zip.File
	for _, file := range zipReader.File {
		if file.Name == "word/document.xml" {
			documentFile = file
			break
		}
	}

	if documentFile == nil {
		return "", fmt.Errorf("document.xml not found in DOCX")
	}

	xmlFile, err := documentFile.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open document.xml: %w", err)
	}
	defer xmlFile.Close()

	xmlData, err := io.ReadAll(io.LimitReader(xmlFile, maxDocumentXML+1))
	if err != nil {
		return "", fmt.Errorf("failed to read document.xml: %w", err)
	}
	if len(xmlData) > maxDocumentXML {
		return "", fmt.Errorf("document.xml exceeds %d bytes", maxDocumentXML)
	}

	text, err := documentText(bytes.NewReader(xmlData))
	if err != nil {
		return "", fmt.Errorf("failed to parse document.xml: %w", err)
	}

	extractedText := strings.TrimSpace(text)

	if extractedText == "" {
		return "", fmt.Errorf("no text could be extracted from DOCX")
	}

	return extractedText, nil
}

// documentText walks document.xml in order, so paragraphs inside tables come out
// where they appear in the body. Text is taken from w:t runs; each w:p ends a line.
func documentText(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var (
		textBuilder strings.Builder
		runDepth    int
		inText      bool
	)

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "r":
				runDepth++
			case "t":
				inText = runDepth > 0
			case "tab":
				if runDepth > 0 {
					textBuilder.WriteString("\t")
				}
			case "br", "cr":
				if runDepth > 0 {
					textBuilder.WriteString("\n")
				}
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "r":
				runDepth--
			case "t":
				inText = false
			case "p":
				textBuilder.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				textBuilder.Write(el)
			}
		}
	}

	return textBuilder.String(), nil
}
