package slidelens

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// parseSlideXML parses one slide part into a Slide. The parser is a
// streaming token walker: it materializes only text-bearing shapes and
// groups, skipping pictures, connectors and graphic frames wholesale.
// Absent attributes and elements produce zero values, never errors.
func parseSlideXML(data []byte) (*Slide, error) {
	slide := &Slide{}
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse slide xml: %w", err)
		}
		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "sld":
			// show="0" marks the slide hidden during presentation.
			for _, attr := range start.Attr {
				if attr.Name.Local == "show" && attr.Value == "0" {
					slide.Hidden = true
				}
			}
		case "spTree":
			shapes, err := parseShapeTree(decoder, "spTree")
			if err != nil {
				return nil, err
			}
			slide.Shapes = shapes
		}
	}
	return slide, nil
}

// parseShapeTree consumes the children of an open spTree or grpSp element
// up to its end tag, returning the shapes in document order.
func parseShapeTree(decoder *xml.Decoder, endLocal string) ([]Shape, error) {
	var shapes []Shape
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return shapes, nil
		}
		if err != nil {
			return nil, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "sp":
				s, err := parseTextShape(decoder)
				if err != nil {
					return nil, err
				}
				if s != nil {
					shapes = append(shapes, s)
				}
			case "grpSp":
				g, err := parseGroupShape(decoder)
				if err != nil {
					return nil, err
				}
				shapes = append(shapes, g)
			case "pic", "cxnSp", "graphicFrame", "contentPart":
				if err := decoder.Skip(); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			if t.Name.Local == endLocal {
				return shapes, nil
			}
		}
	}
}

// parseGroupShape consumes an open grpSp element. The group's own position
// comes from grpSpPr/xfrm; children keep their local coordinates.
func parseGroupShape(decoder *xml.Decoder) (*GroupShape, error) {
	group := &GroupShape{}
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return group, nil
		}
		if err != nil {
			return nil, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "cNvPr":
				for _, attr := range t.Attr {
					if attr.Name.Local == "name" {
						group.Name = attr.Value
					}
				}
			case "grpSpPr":
				if err := parseGroupProps(decoder, group); err != nil {
					return nil, err
				}
			case "sp":
				s, err := parseTextShape(decoder)
				if err != nil {
					return nil, err
				}
				if s != nil {
					group.Shapes = append(group.Shapes, s)
				}
			case "grpSp":
				child, err := parseGroupShape(decoder)
				if err != nil {
					return nil, err
				}
				group.Shapes = append(group.Shapes, child)
			case "pic", "cxnSp", "graphicFrame", "contentPart":
				if err := decoder.Skip(); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			if t.Name.Local == "grpSp" {
				return group, nil
			}
		}
	}
}

func parseGroupProps(decoder *xml.Decoder, group *GroupShape) error {
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "off":
				group.OffsetX, group.OffsetY = parseXYAttrs(t, "x", "y")
			case "ext":
				group.Width, group.Height = parseXYAttrs(t, "cx", "cy")
			}
		case xml.EndElement:
			if t.Name.Local == "grpSpPr" {
				return nil
			}
		}
	}
}

// parseTextShape consumes an open sp element and returns the shape, or nil
// when the shape has no text body at all.
func parseTextShape(decoder *xml.Decoder) (*TextShape, error) {
	shape := &TextShape{}
	hasBody := false
	inSpPr := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "cNvPr":
				for _, attr := range t.Attr {
					if attr.Name.Local == "name" {
						shape.Name = attr.Value
					}
				}
			case "ph":
				// A ph element without a type attribute defaults to a
				// body placeholder per the OOXML schema.
				shape.Placeholder = PlaceholderBody
				for _, attr := range t.Attr {
					if attr.Name.Local == "type" {
						shape.Placeholder = PlaceholderType(attr.Value)
					}
				}
			case "spPr":
				inSpPr = true
			case "off":
				if inSpPr {
					shape.OffsetX, shape.OffsetY = parseXYAttrs(t, "x", "y")
				}
			case "ext":
				if inSpPr {
					shape.Width, shape.Height = parseXYAttrs(t, "cx", "cy")
				}
			case "txBody":
				hasBody = true
				if err := parseTextBody(decoder, shape); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "spPr":
				inSpPr = false
			case "sp":
				if !hasBody {
					return nil, nil
				}
				return shape, nil
			}
		}
	}
	if !hasBody {
		return nil, nil
	}
	return shape, nil
}

// parseTextBody consumes an open txBody element, appending paragraphs to
// the shape. Run properties follow the drawingml layout: attributes on rPr
// plus child elements for fill color and latin typeface.
func parseTextBody(decoder *xml.Decoder, shape *TextShape) error {
	var (
		para *Paragraph
		run  *TextRun

		inLstStyle  bool
		inPPr       bool
		inRPr       bool
		inSolidFill bool
		inBuClr     bool
		inSpcBef    bool
		inSpcAft    bool
		inLnSpc     bool
		inText      bool
	)

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "lstStyle":
				inLstStyle = true
			case "defRPr":
				if inLstStyle && shape.DefaultFontSize == 0 {
					for _, attr := range t.Attr {
						if attr.Name.Local == "sz" {
							if v, err := strconv.Atoi(attr.Value); err == nil {
								shape.DefaultFontSize = v
							}
						}
					}
				}
			case "p":
				if !inLstStyle {
					para = &Paragraph{}
					shape.Paragraphs = append(shape.Paragraphs, para)
				}
			case "pPr":
				if para != nil {
					inPPr = true
					for _, attr := range t.Attr {
						switch attr.Name.Local {
						case "algn":
							para.Alignment = HorizontalAlignment(attr.Value)
						case "lvl":
							if v, err := strconv.Atoi(attr.Value); err == nil {
								para.Level = v
							}
						}
					}
				}
			case "buNone":
				if inPPr && para != nil {
					para.Bullet = &Bullet{Type: BulletNone}
				}
			case "buChar":
				if inPPr && para != nil {
					b := &Bullet{Type: BulletChar}
					for _, attr := range t.Attr {
						if attr.Name.Local == "char" {
							b.Char = attr.Value
						}
					}
					para.Bullet = b
				}
			case "buAutoNum":
				if inPPr && para != nil {
					b := &Bullet{Type: BulletAutoNum}
					for _, attr := range t.Attr {
						if attr.Name.Local == "type" {
							b.NumFormat = attr.Value
						}
					}
					para.Bullet = b
				}
			case "buClr":
				inBuClr = true
			case "spcBef":
				if inPPr {
					inSpcBef = true
				}
			case "spcAft":
				if inPPr {
					inSpcAft = true
				}
			case "lnSpc":
				if inPPr {
					inLnSpc = true
				}
			case "spcPts":
				// Value is in hundredths of a point.
				if para != nil {
					for _, attr := range t.Attr {
						if attr.Name.Local == "val" {
							if v, err := strconv.Atoi(attr.Value); err == nil {
								switch {
								case inSpcBef:
									para.SpaceBefore = &v
								case inSpcAft:
									para.SpaceAfter = &v
								case inLnSpc:
									para.LineSpacing = &v
								}
							}
						}
					}
				}
			case "spcPct":
				// Percentage in thousandths; stored negated to keep one
				// field for both encodings.
				if para != nil && inLnSpc {
					for _, attr := range t.Attr {
						if attr.Name.Local == "val" {
							if v, err := strconv.Atoi(attr.Value); err == nil {
								neg := -v
								para.LineSpacing = &neg
							}
						}
					}
				}
			case "r", "fld":
				if para != nil && !inLstStyle {
					run = &TextRun{}
					para.Runs = append(para.Runs, run)
				}
			case "rPr":
				if run != nil {
					inRPr = true
					applyRunProps(t, run)
				}
			case "solidFill":
				if inRPr {
					inSolidFill = true
				}
			case "srgbClr":
				if inRPr && inSolidFill && !inBuClr && run != nil {
					for _, attr := range t.Attr {
						if attr.Name.Local == "val" {
							run.ColorRGB = normalizeRGB(attr.Value)
						}
					}
				}
			case "schemeClr":
				if inRPr && inSolidFill && !inBuClr && run != nil {
					for _, attr := range t.Attr {
						if attr.Name.Local == "val" {
							run.ThemeColor = attr.Value
						}
					}
				}
			case "latin":
				if inRPr && run != nil {
					for _, attr := range t.Attr {
						if attr.Name.Local == "typeface" {
							run.FontName = attr.Value
						}
					}
				}
			case "t":
				if run != nil {
					inText = true
				}
			}
		case xml.CharData:
			if inText && run != nil {
				run.Text += string(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "txBody":
				return nil
			case "lstStyle":
				inLstStyle = false
			case "p":
				para = nil
			case "pPr":
				inPPr = false
			case "buClr":
				inBuClr = false
			case "spcBef":
				inSpcBef = false
			case "spcAft":
				inSpcAft = false
			case "lnSpc":
				inLnSpc = false
			case "r", "fld":
				run = nil
			case "rPr":
				inRPr = false
				inSolidFill = false
			case "solidFill":
				inSolidFill = false
			case "t":
				inText = false
			}
		}
	}
}

// applyRunProps reads the scalar run attributes from an rPr start element.
func applyRunProps(t xml.StartElement, run *TextRun) {
	for _, attr := range t.Attr {
		switch attr.Name.Local {
		case "sz":
			if v, err := strconv.Atoi(attr.Value); err == nil {
				run.FontSize = &v
			}
		case "b":
			v := attr.Value == "1" || attr.Value == "true"
			run.Bold = &v
		case "i":
			v := attr.Value == "1" || attr.Value == "true"
			run.Italic = &v
		case "u":
			v := attr.Value != "none"
			run.Underline = &v
		}
	}
}

// parseXYAttrs reads a pair of int64 attributes, defaulting missing or
// malformed values to 0.
func parseXYAttrs(t xml.StartElement, xName, yName string) (int64, int64) {
	var x, y int64
	for _, attr := range t.Attr {
		switch attr.Name.Local {
		case xName:
			if v, err := strconv.ParseInt(attr.Value, 10, 64); err == nil {
				x = v
			}
		case yName:
			if v, err := strconv.ParseInt(attr.Value, 10, 64); err == nil {
				y = v
			}
		}
	}
	return x, y
}

// normalizeRGB uppercases a 6-char RGB hex value, stripping any leading '#'.
func normalizeRGB(v string) string {
	v = strings.ToUpper(strings.TrimPrefix(v, "#"))
	if len(v) == 8 {
		// ARGB: drop the alpha byte.
		v = v[2:]
	}
	return v
}
