package imagepack

// mediumTypes maps the IPI image medium code to its description.
var mediumTypes = [...]string{
	"color negative",
	"color reversal",
	"color hard copy",
	"thermal hard copy",
	"black and white negative",
	"black and white reversal",
	"black and white hard copy",
	"internegative",
	"synthetic image",
	"chromogenic",
}

// sbaCommands maps the SBA command code to its description.
var sbaCommands = [...]string{
	"neutral SBA on, color SBA on",
	"neutral SBA off, color SBA off",
	"neutral SBA on, color SBA off",
	"neutral SBA off, color SBA on",
}

// huffmanClasses maps the compression class from the image attributes
// to its description.
var huffmanClasses = [...]string{
	"class 1 - 35mm film; pictoral hard copy",
	"class 2 - large format film",
	"class 3 - text and graphics, high resolution",
	"class 4 - text and graphics, high dynamic range",
}

// MediumType returns the description for an image medium code, or ""
// if the code is not defined.
func MediumType(code byte) string {
	if int(code) >= len(mediumTypes) {
		return ""
	}
	return mediumTypes[code]
}

// SBACommand returns the description for a scene balance algorithm
// command code, or "" if the code is not defined.
func SBACommand(code byte) string {
	if int(code) >= len(sbaCommands) {
		return ""
	}
	return sbaCommands[code]
}

// HuffmanClass returns the description for a compression class index
// 0..3.
func HuffmanClass(class int) string {
	if class < 0 || class >= len(huffmanClasses) {
		return ""
	}
	return huffmanClasses[class]
}

// IsBlackAndWhite reports whether the medium code identifies a
// black and white original, which carries no usable chroma.
func IsBlackAndWhite(code byte) bool {
	return code == 4 || code == 5 || code == 6
}
