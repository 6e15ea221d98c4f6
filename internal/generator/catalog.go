package generator

// TeamTemplate 球队目录中的一支球队（选队界面展示用）
type TeamTemplate struct {
	ID           string
	Name         string
	Abbreviation string
	City         string
	Stadium      string
	Colors       []string
}

var catalog = []TeamTemplate{
	{ID: "harbor-city", Name: "Harbor City FC", Abbreviation: "HCF", City: "Harbor City", Stadium: "Pier Park", Colors: []string{"#0B3D91", "#FFFFFF"}},
	{ID: "northvale", Name: "Northvale United", Abbreviation: "NVU", City: "Northvale", Stadium: "Crown Ground", Colors: []string{"#C8102E", "#000000"}},
	{ID: "redmarsh", Name: "Redmarsh Rovers", Abbreviation: "RMR", City: "Redmarsh", Stadium: "The Fens", Colors: []string{"#B22222", "#F5F5DC"}},
	{ID: "ironbridge", Name: "Ironbridge Athletic", Abbreviation: "IBA", City: "Ironbridge", Stadium: "Foundry Lane", Colors: []string{"#4B4B4B", "#FFD700"}},
	{ID: "westmoor", Name: "Westmoor Wanderers", Abbreviation: "WMW", City: "Westmoor", Stadium: "Heath Road", Colors: []string{"#006400", "#FFFFFF"}},
	{ID: "kingsport", Name: "Kingsport Town", Abbreviation: "KPT", City: "Kingsport", Stadium: "Royal Quay", Colors: []string{"#4169E1", "#FFD700"}},
	{ID: "ashford", Name: "Ashford Albion", Abbreviation: "ASA", City: "Ashford", Stadium: "Mill Meadow", Colors: []string{"#800080", "#FFFFFF"}},
	{ID: "stonegate", Name: "Stonegate City", Abbreviation: "STC", City: "Stonegate", Stadium: "Quarry Park", Colors: []string{"#87CEEB", "#FFFFFF"}},
	{ID: "brightwater", Name: "Brightwater Rangers", Abbreviation: "BWR", City: "Brightwater", Stadium: "Lakeside", Colors: []string{"#FF8C00", "#000000"}},
	{ID: "oakfield", Name: "Oakfield Villa", Abbreviation: "OFV", City: "Oakfield", Stadium: "Elm Street", Colors: []string{"#7B1E3A", "#87CEEB"}},
}

// Catalog 返回球队目录副本
func Catalog() []TeamTemplate {
	out := make([]TeamTemplate, len(catalog))
	copy(out, catalog)
	return out
}

// CatalogN 返回前 n 支球队；n<=0 或超出目录长度时返回全部
func CatalogN(n int) []TeamTemplate {
	all := Catalog()
	if n <= 0 || n > len(all) {
		return all
	}
	return all[:n]
}

// FindTemplate 按ID查找球队模板
func FindTemplate(templates []TeamTemplate, id string) (TeamTemplate, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return TeamTemplate{}, false
}
