package provider

// tables 取值用的词表
// 内置实现使用 defaultTables，语料实现可以按节覆盖
type tables struct {
	FirstNames   []string
	LastNames    []string
	Streets      []string
	Cities       []city
	EmailDomains []string
	Words        map[string][]string
}

// city 一组相互匹配的城市要素
type city struct {
	Name       string
	State      string
	PostalCode string
}

func defaultTables() tables {
	return tables{
		FirstNames: []string{
			"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael",
			"Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan",
			"Joseph", "Jessica", "Thomas", "Sarah", "Charles", "Karen", "Daniel",
			"Nancy", "Matthew", "Lisa", "Anthony", "Betty", "Mark", "Margaret",
			"Emily", "Carlos", "Sofia", "Wei", "Yuki", "Amir", "Elena",
		},
		LastNames: []string{
			"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
			"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
			"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
			"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark",
			"Chen", "Tanaka", "Singh", "Kim", "Novak", "Silva", "Kowalski",
		},
		Streets: []string{
			"Main St", "Oak Ave", "Maple Dr", "Cedar Ln", "Pine St", "Elm St",
			"Washington Blvd", "Park Ave", "Lake Rd", "Hill St", "River Rd",
			"Sunset Blvd", "Broadway", "Church St", "Highland Ave", "Mill Rd",
		},
		Cities: []city{
			{Name: "Springfield", State: "Illinois", PostalCode: "62701"},
			{Name: "Riverside", State: "California", PostalCode: "92501"},
			{Name: "Franklin", State: "Tennessee", PostalCode: "37064"},
			{Name: "Georgetown", State: "Texas", PostalCode: "78626"},
			{Name: "Clinton", State: "Iowa", PostalCode: "52732"},
			{Name: "Salem", State: "Oregon", PostalCode: "97301"},
			{Name: "Fairview", State: "New Jersey", PostalCode: "07022"},
			{Name: "Madison", State: "Wisconsin", PostalCode: "53703"},
			{Name: "Arlington", State: "Virginia", PostalCode: "22201"},
			{Name: "Bristol", State: "Connecticut", PostalCode: "06010"},
		},
		EmailDomains: []string{
			"gmail.com", "yahoo.com", "outlook.com", "hotmail.com",
			"icloud.com", "example.com",
		},
		Words: map[string][]string{
			"generic": {
				"alpha", "atlas", "aurora", "beacon", "breeze", "cascade", "cedar",
				"comet", "crystal", "delta", "ember", "falcon", "harbor", "horizon",
				"ivory", "jade", "luna", "meadow", "nimbus", "nova", "onyx", "orbit",
				"pearl", "prism", "quartz", "raven", "sierra", "summit", "terra",
				"tide", "vertex", "willow", "zenith", "zephyr",
			},
			"adjective": {
				"premium", "classic", "modern", "compact", "deluxe", "essential",
				"portable", "smart", "ultra", "vintage", "elegant", "rugged",
				"sleek", "advanced", "eco", "pro",
			},
			"color": {
				"black", "white", "silver", "gray", "blue", "red", "green",
				"navy", "beige", "charcoal",
			},
		},
	}
}

// merge 用非空节覆盖内置词表
func (t tables) merge(other tables) tables {
	merged := t
	if len(other.FirstNames) > 0 {
		merged.FirstNames = other.FirstNames
	}
	if len(other.LastNames) > 0 {
		merged.LastNames = other.LastNames
	}
	if len(other.Streets) > 0 {
		merged.Streets = other.Streets
	}
	if len(other.Cities) > 0 {
		merged.Cities = other.Cities
	}
	if len(other.EmailDomains) > 0 {
		merged.EmailDomains = other.EmailDomains
	}
	if len(other.Words) > 0 {
		words := make(map[string][]string, len(t.Words)+len(other.Words))
		for k, v := range t.Words {
			words[k] = v
		}
		for k, v := range other.Words {
			words[k] = v
		}
		merged.Words = words
	}
	return merged
}
