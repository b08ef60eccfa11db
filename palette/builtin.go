package palette

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() *Catalog {
	return NewCatalog(builtin)
}

var builtin = map[string][]Color{
	"warmSunset": {
		{"Ember", "#FF4E50"}, {"Tangerine", "#FC913A"}, {"Marigold", "#F9D423"},
		{"Coral", "#FF6F61"}, {"Rosewood", "#C94C4C"}, {"Apricot", "#FBCEB1"},
		{"Amber", "#FFBF00"}, {"Dusk", "#6B4226"},
	},
	"oceanDepths": {
		{"Abyss", "#011F4B"}, {"Navy", "#03396C"}, {"Marine", "#005B96"},
		{"Lagoon", "#6497B1"}, {"Foam", "#B3CDE0"}, {"Teal", "#008080"},
		{"Aqua", "#00CED1"}, {"Kelp", "#2E8B57"}, {"Pearl", "#EAE0C8"},
		{"Reef", "#FF7F50"}, {"Ink", "#1B263B"},
	},
	"forestFloor": {
		{"Moss", "#8A9A5B"}, {"Fern", "#4F7942"}, {"Pine", "#01796F"},
		{"Bark", "#5D432C"}, {"Loam", "#3B2F2F"}, {"Lichen", "#C5D86D"},
		{"Mushroom", "#BFAE9F"},
	},
	"neonNights": {
		{"Magenta", "#FF00FF"}, {"Cyan", "#00FFFF"}, {"Lime", "#39FF14"},
		{"Hot Pink", "#FF1493"}, {"Electric Blue", "#7DF9FF"}, {"Laser", "#FFFF33"},
		{"Ultraviolet", "#5F00FF"}, {"Midnight", "#0B0C10"}, {"Plasma", "#FF6EC7"},
		{"Volt", "#CEFF00"},
	},
	"pastelDreams": {
		{"Blush", "#FFD1DC"}, {"Mint", "#AAF0D1"}, {"Lavender", "#E6E6FA"},
		{"Butter", "#FFFACD"}, {"Baby Blue", "#BFEFFF"}, {"Peach", "#FFE5B4"},
		{"Lilac", "#C8A2C8"}, {"Seafoam", "#93E9BE"}, {"Cream", "#FFFDD0"},
	},
	"monochrome": {
		{"Black", "#000000"}, {"Charcoal", "#222222"}, {"Graphite", "#444444"},
		{"Slate", "#777777"}, {"Silver", "#AAAAAA"}, {"Mist", "#DDDDDD"},
		{"White", "#FFFFFF"},
	},
	"earthTones": {
		{"Clay", "#B66A50"}, {"Sand", "#C2B280"}, {"Ochre", "#CC7722"},
		{"Sienna", "#A0522D"}, {"Umber", "#635147"}, {"Olive", "#708238"},
		{"Terracotta", "#E2725B"}, {"Khaki", "#C3B091"},
	},
}
