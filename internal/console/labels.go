package console

var industryLabels = map[string]string{
	"manufacturing": "Manufacturing",
	"retail":        "Retail",
	"food":          "Food",
	"health":        "Health",
	"education":     "Education",
	"services":      "Services",
}

var statusLabels = map[string]string{
	"active":       "Active",
	"inactive":     "Inactive",
	"discontinued": "Discontinued",
}

func industryLabel(v string) string {
	if l, ok := industryLabels[v]; ok {
		return l
	}
	return v
}

func statusLabel(v string) string {
	if l, ok := statusLabels[v]; ok {
		return l
	}
	return v
}
