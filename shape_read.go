package swf

import "fmt"

// ReadDefineShape reads the body of a DefineShape tag (version 1-4).
func (r *Reader) ReadDefineShape(version uint8) (*Shape, error) {
	id, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	s := &Shape{Version: version, ID: CharacterID(id)}
	if s.ShapeBounds, err = r.ReadRect(); err != nil {
		return nil, err
	}
	s.EdgeBounds = s.ShapeBounds
	if version >= 4 {
		if s.EdgeBounds, err = r.ReadRect(); err != nil {
			return nil, err
		}
		flags, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		s.Flags = ShapeFlags(flags & 0x07)
	}
	if s.Styles, err = r.readShapeStyles(version); err != nil {
		return nil, fmt.Errorf("shape %d styles: %w", id, err)
	}
	if s.Records, err = r.readShapeRecords(version); err != nil {
		return nil, fmt.Errorf("shape %d records: %w", id, err)
	}
	return s, nil
}

func (r *Reader) readStyleCount(version uint8) (int, error) {
	n, err := r.ReadU8()
	if err != nil {
		return 0, err
	}
	if n == 0xff && version >= 2 {
		n16, err := r.ReadU16()
		return int(n16), err
	}
	return int(n), nil
}

func (r *Reader) readShapeStyles(version uint8) (ShapeStyles, error) {
	var styles ShapeStyles
	n, err := r.readStyleCount(version)
	if err != nil {
		return styles, err
	}
	styles.FillStyles = make([]FillStyle, 0, n)
	for range n {
		f, err := r.readFillStyle(version)
		if err != nil {
			return styles, err
		}
		styles.FillStyles = append(styles.FillStyles, f)
	}
	if n, err = r.readStyleCount(version); err != nil {
		return styles, err
	}
	styles.LineStyles = make([]LineStyle, 0, n)
	for range n {
		ls, err := r.readLineStyle(version)
		if err != nil {
			return styles, err
		}
		styles.LineStyles = append(styles.LineStyles, ls)
	}
	return styles, nil
}

func (r *Reader) readShapeColor(version uint8) (Color, error) {
	if version >= 3 {
		return r.ReadRGBA()
	}
	return r.ReadRGB()
}

func (r *Reader) readFillStyle(version uint8) (FillStyle, error) {
	kind, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	switch kind {
	case 0x00:
		c, err := r.readShapeColor(version)
		return SolidFill{Color: c}, err
	case 0x10, 0x12, 0x13:
		m, err := r.ReadMatrix()
		if err != nil {
			return nil, err
		}
		g, err := r.readGradient(version)
		if err != nil {
			return nil, err
		}
		g.Matrix = m
		switch kind {
		case 0x10:
			return LinearGradientFill{Gradient: g}, nil
		case 0x12:
			return RadialGradientFill{Gradient: g}, nil
		}
		fp, err := r.ReadFixed8()
		return FocalGradientFill{Gradient: g, FocalPoint: fp}, err
	case 0x40, 0x41, 0x42, 0x43:
		id, err := r.ReadU16()
		if err != nil {
			return nil, err
		}
		m, err := r.ReadMatrix()
		return BitmapFill{
			ID:        CharacterID(id),
			Matrix:    m,
			Repeating: kind&0x01 == 0,
			Smoothed:  kind&0x02 == 0,
		}, err
	default:
		return nil, fmt.Errorf("fill style type %#x: %w", kind, ErrInvalidData)
	}
}

func (r *Reader) readGradient(version uint8) (Gradient, error) {
	var g Gradient
	flags, err := r.ReadU8()
	if err != nil {
		return g, err
	}
	g.Spread = GradientSpread(flags >> 6 & 0x03)
	g.Interpolation = GradientInterpolation(flags >> 4 & 0x03)
	n := int(flags & 0x0f)
	g.Records = make([]GradientRecord, n)
	for i := range g.Records {
		if g.Records[i].Ratio, err = r.ReadU8(); err != nil {
			return g, err
		}
		if g.Records[i].Color, err = r.readShapeColor(version); err != nil {
			return g, err
		}
	}
	return g, nil
}

func (r *Reader) readLineStyle(version uint8) (LineStyle, error) {
	w, err := r.ReadU16()
	if err != nil {
		return LineStyle{}, err
	}
	ls := LineStyle{Width: Twips(w), MiterLimit: 3}
	if version < 4 {
		c, err := r.readShapeColor(version)
		ls.Fill = SolidFill{Color: c}
		return ls, err
	}
	hasFill, err := r.readLineStyle2Flags(&ls)
	if err != nil {
		return ls, err
	}
	if hasFill {
		ls.Fill, err = r.readFillStyle(version)
	} else {
		var c Color
		c, err = r.ReadRGBA()
		ls.Fill = SolidFill{Color: c}
	}
	return ls, err
}

// readLineStyle2Flags reads the two flag bytes (and miter limit) shared by
// LINESTYLE2 and MORPHLINESTYLE2, reporting whether a fill style follows.
func (r *Reader) readLineStyle2Flags(ls *LineStyle) (bool, error) {
	b, err := r.ReadBytes(2)
	if err != nil {
		return false, err
	}
	ls.StartCap = LineCap(b[0] >> 6 & 0x03)
	ls.Join = LineJoin(b[0] >> 4 & 0x03)
	hasFill := b[0]&0x08 != 0
	ls.NoHScale = b[0]&0x04 != 0
	ls.NoVScale = b[0]&0x02 != 0
	ls.PixelHinting = b[0]&0x01 != 0
	ls.NoClose = b[1]&0x04 != 0
	ls.EndCap = LineCap(b[1] & 0x03)
	if ls.Join == JoinMiter {
		if ls.MiterLimit, err = r.ReadFixed8(); err != nil {
			return false, err
		}
	}
	return hasFill, nil
}

func (r *Reader) readShapeRecords(version uint8) ([]ShapeRecord, error) {
	fillBits, err := r.ReadUB(4)
	if err != nil {
		return nil, err
	}
	lineBits, err := r.ReadUB(4)
	if err != nil {
		return nil, err
	}
	var records []ShapeRecord
	for {
		isEdge, err := r.ReadBit()
		if err != nil {
			return records, err
		}
		if isEdge {
			rec, err := r.readEdge()
			if err != nil {
				return records, err
			}
			records = append(records, rec)
			continue
		}
		flags, err := r.ReadUB(5)
		if err != nil {
			return records, err
		}
		if flags == 0 {
			return records, nil
		}
		var sc StyleChange
		if flags&0x01 != 0 {
			n, err := r.ReadUB(5)
			if err != nil {
				return records, err
			}
			x, err := r.ReadSB(uint(n))
			if err != nil {
				return records, err
			}
			y, err := r.ReadSB(uint(n))
			if err != nil {
				return records, err
			}
			sc.MoveTo = &Point{X: Twips(x), Y: Twips(y)}
		}
		if flags&0x02 != 0 {
			v, err := r.ReadUB(uint(fillBits))
			if err != nil {
				return records, err
			}
			sc.FillStyle0 = ptr(v)
		}
		if flags&0x04 != 0 {
			v, err := r.ReadUB(uint(fillBits))
			if err != nil {
				return records, err
			}
			sc.FillStyle1 = ptr(v)
		}
		if flags&0x08 != 0 {
			v, err := r.ReadUB(uint(lineBits))
			if err != nil {
				return records, err
			}
			sc.LineStyle = ptr(v)
		}
		if flags&0x10 != 0 {
			styles, err := r.readShapeStyles(version)
			if err != nil {
				return records, err
			}
			sc.NewStyles = &styles
			if fillBits, err = r.ReadUB(4); err != nil {
				return records, err
			}
			if lineBits, err = r.ReadUB(4); err != nil {
				return records, err
			}
		}
		records = append(records, sc)
	}
}

func (r *Reader) readEdge() (ShapeRecord, error) {
	straight, err := r.ReadBit()
	if err != nil {
		return nil, err
	}
	nb, err := r.ReadUB(4)
	if err != nil {
		return nil, err
	}
	n := uint(nb) + 2
	if straight {
		general, err := r.ReadBit()
		if err != nil {
			return nil, err
		}
		var dx, dy int32
		if general {
			if dx, err = r.ReadSB(n); err != nil {
				return nil, err
			}
			if dy, err = r.ReadSB(n); err != nil {
				return nil, err
			}
		} else {
			vertical, err := r.ReadBit()
			if err != nil {
				return nil, err
			}
			if vertical {
				dy, err = r.ReadSB(n)
			} else {
				dx, err = r.ReadSB(n)
			}
			if err != nil {
				return nil, err
			}
		}
		return StraightEdge{Delta: Point{X: Twips(dx), Y: Twips(dy)}}, nil
	}
	var v [4]int32
	for i := range v {
		if v[i], err = r.ReadSB(n); err != nil {
			return nil, err
		}
	}
	return CurvedEdge{
		Control: Point{X: Twips(v[0]), Y: Twips(v[1])},
		Anchor:  Point{X: Twips(v[2]), Y: Twips(v[3])},
	}, nil
}

// ReadDefineMorphShape reads the body of a DefineMorphShape tag (version
// 1 or 2). The morph style lists are split into start and end lists.
func (r *Reader) ReadDefineMorphShape(version uint8) (*DefineMorphShape, error) {
	id, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	m := &DefineMorphShape{Version: version, ID: CharacterID(id)}
	m.Start.ID, m.End.ID = m.ID, m.ID
	m.Start.Version, m.End.Version = 4, 4
	if m.Start.ShapeBounds, err = r.ReadRect(); err != nil {
		return nil, err
	}
	if m.End.ShapeBounds, err = r.ReadRect(); err != nil {
		return nil, err
	}
	m.Start.EdgeBounds, m.End.EdgeBounds = m.Start.ShapeBounds, m.End.ShapeBounds
	if version >= 2 {
		if m.Start.EdgeBounds, err = r.ReadRect(); err != nil {
			return nil, err
		}
		if m.End.EdgeBounds, err = r.ReadRect(); err != nil {
			return nil, err
		}
		flags, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		m.Flags = ShapeFlags(flags & 0x03)
	}
	m.Start.Flags, m.End.Flags = m.Flags, m.Flags

	offset, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	endEdges := r.Pos() + int(offset)

	n, err := r.readStyleCount(2)
	if err != nil {
		return nil, err
	}
	for range n {
		start, end, err := r.readMorphFillStyle()
		if err != nil {
			return nil, fmt.Errorf("morph shape %d fill: %w", id, err)
		}
		m.Start.Styles.FillStyles = append(m.Start.Styles.FillStyles, start)
		m.End.Styles.FillStyles = append(m.End.Styles.FillStyles, end)
	}
	if n, err = r.readStyleCount(2); err != nil {
		return nil, err
	}
	for range n {
		start, end, err := r.readMorphLineStyle(version)
		if err != nil {
			return nil, fmt.Errorf("morph shape %d line: %w", id, err)
		}
		m.Start.Styles.LineStyles = append(m.Start.Styles.LineStyles, start)
		m.End.Styles.LineStyles = append(m.End.Styles.LineStyles, end)
	}

	if m.Start.Records, err = r.readShapeRecords(4); err != nil {
		return nil, fmt.Errorf("morph shape %d start edges: %w", id, err)
	}
	if offset != 0 && endEdges <= len(r.data) {
		r.Seek(endEdges)
	}
	if m.End.Records, err = r.readShapeRecords(4); err != nil {
		return nil, fmt.Errorf("morph shape %d end edges: %w", id, err)
	}
	return m, nil
}

func (r *Reader) readMorphFillStyle() (FillStyle, FillStyle, error) {
	kind, err := r.ReadU8()
	if err != nil {
		return nil, nil, err
	}
	switch kind {
	case 0x00:
		sc, err := r.ReadRGBA()
		if err != nil {
			return nil, nil, err
		}
		ec, err := r.ReadRGBA()
		return SolidFill{Color: sc}, SolidFill{Color: ec}, err
	case 0x10, 0x12, 0x13:
		sm, err := r.ReadMatrix()
		if err != nil {
			return nil, nil, err
		}
		em, err := r.ReadMatrix()
		if err != nil {
			return nil, nil, err
		}
		sg, eg, err := r.readMorphGradient()
		if err != nil {
			return nil, nil, err
		}
		sg.Matrix, eg.Matrix = sm, em
		switch kind {
		case 0x10:
			return LinearGradientFill{Gradient: sg}, LinearGradientFill{Gradient: eg}, nil
		case 0x12:
			return RadialGradientFill{Gradient: sg}, RadialGradientFill{Gradient: eg}, nil
		}
		sf, err := r.ReadFixed8()
		if err != nil {
			return nil, nil, err
		}
		ef, err := r.ReadFixed8()
		return FocalGradientFill{Gradient: sg, FocalPoint: sf}, FocalGradientFill{Gradient: eg, FocalPoint: ef}, err
	case 0x40, 0x41, 0x42, 0x43:
		id, err := r.ReadU16()
		if err != nil {
			return nil, nil, err
		}
		sm, err := r.ReadMatrix()
		if err != nil {
			return nil, nil, err
		}
		em, err := r.ReadMatrix()
		start := BitmapFill{ID: CharacterID(id), Matrix: sm, Repeating: kind&0x01 == 0, Smoothed: kind&0x02 == 0}
		end := start
		end.Matrix = em
		return start, end, err
	default:
		return nil, nil, fmt.Errorf("morph fill style type %#x: %w", kind, ErrInvalidData)
	}
}

func (r *Reader) readMorphGradient() (Gradient, Gradient, error) {
	var start, end Gradient
	flags, err := r.ReadU8()
	if err != nil {
		return start, end, err
	}
	start.Spread = GradientSpread(flags >> 6 & 0x03)
	start.Interpolation = GradientInterpolation(flags >> 4 & 0x03)
	end.Spread, end.Interpolation = start.Spread, start.Interpolation
	n := int(flags & 0x0f)
	start.Records = make([]GradientRecord, n)
	end.Records = make([]GradientRecord, n)
	for i := range n {
		if start.Records[i].Ratio, err = r.ReadU8(); err != nil {
			return start, end, err
		}
		if start.Records[i].Color, err = r.ReadRGBA(); err != nil {
			return start, end, err
		}
		if end.Records[i].Ratio, err = r.ReadU8(); err != nil {
			return start, end, err
		}
		if end.Records[i].Color, err = r.ReadRGBA(); err != nil {
			return start, end, err
		}
	}
	return start, end, nil
}

func (r *Reader) readMorphLineStyle(version uint8) (LineStyle, LineStyle, error) {
	sw, err := r.ReadU16()
	if err != nil {
		return LineStyle{}, LineStyle{}, err
	}
	ew, err := r.ReadU16()
	if err != nil {
		return LineStyle{}, LineStyle{}, err
	}
	start := LineStyle{Width: Twips(sw), MiterLimit: 3}
	hasFill := false
	if version >= 2 {
		if hasFill, err = r.readLineStyle2Flags(&start); err != nil {
			return start, start, err
		}
	}
	end := start
	end.Width = Twips(ew)
	if hasFill {
		start.Fill, end.Fill, err = r.readMorphFillStyle()
		return start, end, err
	}
	sc, err := r.ReadRGBA()
	if err != nil {
		return start, end, err
	}
	ec, err := r.ReadRGBA()
	start.Fill, end.Fill = SolidFill{Color: sc}, SolidFill{Color: ec}
	return start, end, err
}
