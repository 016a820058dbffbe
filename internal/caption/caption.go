// Package caption assembles social-media post text for analog photography
// shots: a short header describing the gear followed by a hashtag list
// matched to the film stock.
package caption

import (
	"fmt"
	"strings"
)

// FilmType selects the hashtag set appended to a caption.
type FilmType string

const (
	Color                   FilmType = "color"
	BlackAndWhite           FilmType = "black-and-white"
	LomographyColor         FilmType = "lomography-color"
	LomographyBlackAndWhite FilmType = "lomography-black-and-white"
)

// ParseFilmType maps a CLI value to a FilmType.
func ParseFilmType(s string) (FilmType, error) {
	switch FilmType(s) {
	case Color, BlackAndWhite, LomographyColor, LomographyBlackAndWhite:
		return FilmType(s), nil
	}
	return "", fmt.Errorf("unknown film type %q (want %s, %s, %s or %s)",
		s, Color, BlackAndWhite, LomographyColor, LomographyBlackAndWhite)
}

const colorTags = "#35mm #colorFilm #filmPhotography #analogPhotography #filmIsNotDead #iStillShootFilm #shootFilm #filmCommunity #filmLovers #colorFilmPhotography #35mmFilm #filmShooter #analogLove #filmLife #analogVibes #analogLove"

const blackAndWhiteTags = "#35mm #blackAndWhitePhotography #BWPhotography #analogPhotography #filmPhotography #classicBW #filmIsNotDead #shootFilm #iStillShootFilm #filmCommunity #BWFilm #BWFilmPhotography #filmLovers #monochromePhotography #35mmFilm #filmShooter #BlackAndWhiteFilm #analogLove #filmLife"

// Post describes one shot to caption. Title and Lab default at the CLI
// boundary, not here.
type Post struct {
	Title  string
	Camera string
	Film   string
	Lab    string
	Type   FilmType
}

// Build renders the full post text: title, gear header, then hashtags.
func Build(p Post) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", p.Title)
	fmt.Fprintf(&b, "📸 %s\n", p.Camera)
	if p.Film != "" {
		fmt.Fprintf(&b, "🎞️ %s\n", p.Film)
	}
	if p.Lab != "" {
		fmt.Fprintf(&b, "🧪 %s\n", p.Lab)
	}
	b.WriteString("\n")
	b.WriteString(Hashtags(p.Film, p.Type, p.Camera))
	return b.String()
}

// Hashtags builds the tag list for a film type, then appends progressive
// word-accumulation tags derived from the film and camera names.
func Hashtags(film string, filmType FilmType, camera string) string {
	var b strings.Builder

	switch filmType {
	case BlackAndWhite, LomographyBlackAndWhite:
		b.WriteString(blackAndWhiteTags)
	default:
		b.WriteString(colorTags)
	}

	if filmType == LomographyColor || filmType == LomographyBlackAndWhite {
		b.WriteString(" #HeyLomography")
	}

	for _, tag := range accumulate(film, " ") {
		fmt.Fprintf(&b, " #%s", tag)
	}
	for _, tag := range accumulate(camera, " ") {
		fmt.Fprintf(&b, " #%s", tag)
	}

	return b.String()
}

// accumulate turns "Portra 400" into ["Portra", "Portra400"]: each word is
// appended to a running prefix and the prefix emitted at every step, so both
// the brand and the full name become tags. Parenthesized words are skipped
// and a leading @ is dropped.
func accumulate(input, separator string) []string {
	if input == "" {
		return nil
	}

	var result []string
	var current strings.Builder
	for _, word := range strings.Split(input, separator) {
		if strings.HasPrefix(word, "(") {
			continue
		}
		current.WriteString(strings.TrimPrefix(word, "@"))
		result = append(result, current.String())
	}
	return result
}
