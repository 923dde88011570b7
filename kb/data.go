package kb

// This file embeds the Sri Lanka dataset: the full city table and the road
// network. The data is authored here as Go values on purpose — it is static
// configuration, not an external file, and is validated once by Default().

// srilankaCities is the destination table.
var srilankaCities = []City{
	{ID: "colombo", Type: Urban, Region: West, Climate: Tropical, BestSeason: AllYear,
		Budget: Variable, Lat: 6.9271, Lon: 79.8612},

	{ID: "galle", Type: Beach, Region: South, Climate: Tropical, BestSeason: Winter,
		Budget: Moderate, Lat: 6.0535, Lon: 80.2210, Attractions: []string{"galle_fort"}},

	{ID: "mirissa", Type: Beach, Region: South, Climate: Tropical, BestSeason: Winter,
		Budget: Moderate, Lat: 5.9485, Lon: 80.4719, Attractions: []string{"whale_watching"}},

	{ID: "hambantota", Type: Beach, Region: South, Climate: Tropical, BestSeason: Winter,
		Budget: Cheap, Lat: 6.1246, Lon: 81.1210},

	{ID: "kandy", Type: Cultural, Region: Central, Climate: Mild, BestSeason: AllYear,
		Budget: Moderate, Lat: 7.2906, Lon: 80.6337, Attractions: []string{"temple_of_tooth"}},

	{ID: "nuwara_eliya", Type: HillCountry, Region: Central, Climate: Cool, BestSeason: AllYear,
		Budget: High, Lat: 6.9497, Lon: 80.7891, Attractions: []string{"tea_plantations"}},

	{ID: "ella", Type: HillCountry, Region: Uva, Climate: Mild, BestSeason: Summer,
		Budget: Cheap, Lat: 6.8755, Lon: 81.0460, Attractions: []string{"nine_arches_bridge"}},

	{ID: "anuradhapura", Type: Historical, Region: NorthCentral, Climate: Dry, BestSeason: AllYear,
		Budget: Cheap, Lat: 8.3114, Lon: 80.4037, Attractions: []string{"ancient_ruins"}},

	{ID: "sigiriya", Type: Historical, Region: NorthCentral, Climate: Dry, BestSeason: AllYear,
		Budget: Moderate, Lat: 7.9570, Lon: 80.7603, Attractions: []string{"sigiriya_rock"}},

	{ID: "yala", Type: NationalPark, Region: Southeast, Climate: Tropical, BestSeason: Winter,
		Budget: Moderate, Lat: 6.3667, Lon: 81.5167, Attractions: []string{"wildlife_safari"}},

	{ID: "horton_plains", Type: NationalPark, Region: Central, Climate: Cool, BestSeason: AllYear,
		Budget: Moderate, Lat: 6.8020, Lon: 80.7998, Attractions: []string{"worlds_end"}},

	{ID: "jaffna", Type: Urban, Region: North, Climate: Dry, BestSeason: Summer,
		Budget: Moderate, Lat: 9.6615, Lon: 80.0255, Attractions: []string{"nallur_kandaswamy_temple"}},

	{ID: "trincomalee", Type: Beach, Region: East, Climate: Tropical, BestSeason: Summer,
		Budget: Moderate, Lat: 8.5874, Lon: 81.2152, Attractions: []string{"pigeon_island"}},

	{ID: "arugam_bay", Type: Beach, Region: East, Climate: Tropical, BestSeason: Summer,
		Budget: Cheap, Lat: 6.8390, Lon: 81.8386, Attractions: []string{"surfing"}},

	{ID: "polonnaruwa", Type: Historical, Region: NorthCentral, Climate: Dry, BestSeason: AllYear,
		Budget: Cheap, Lat: 7.9396, Lon: 81.0003, Attractions: []string{"gal_vihara"}},

	{ID: "dambulla", Type: Historical, Region: Central, Climate: Dry, BestSeason: AllYear,
		Budget: Cheap, Lat: 7.8568, Lon: 80.6490, Attractions: []string{"golden_temple"}},

	{ID: "bentota", Type: Beach, Region: West, Climate: Tropical, BestSeason: Winter,
		Budget: Moderate, Lat: 6.4210, Lon: 80.0011, Attractions: []string{"water_sports"}},

	{ID: "negombo", Type: Beach, Region: West, Climate: Tropical, BestSeason: AllYear,
		Budget: Cheap, Lat: 7.2083, Lon: 79.8358, Attractions: []string{"fish_market"}},

	{ID: "matara", Type: Urban, Region: South, Climate: Tropical, BestSeason: Winter,
		Budget: Cheap, Lat: 5.9549, Lon: 80.5550, Attractions: []string{"star_fort"}},

	{ID: "badulla", Type: HillCountry, Region: Uva, Climate: Mild, BestSeason: Summer,
		Budget: Cheap, Lat: 6.9897, Lon: 81.0550, Attractions: []string{"demodara_loop"}},

	{ID: "kurunegala", Type: Urban, Region: NorthWestern, Climate: Tropical, BestSeason: AllYear,
		Budget: Cheap, Lat: 7.4863, Lon: 80.3623, Attractions: []string{"ridi_viharaya"}},

	{ID: "ratnapura", Type: Urban, Region: Sabaragamuwa, Climate: Tropical, BestSeason: AllYear,
		Budget: Cheap, Lat: 6.6828, Lon: 80.3992, Attractions: []string{"gem_mining", "sinharaja_forest"}},

	{ID: "batticaloa", Type: Urban, Region: East, Climate: Tropical, BestSeason: Summer,
		Budget: Cheap, Lat: 7.7310, Lon: 81.6925, Attractions: []string{"batticaloa_lagoon"}},

	{ID: "kalmunai", Type: Urban, Region: East, Climate: Tropical, BestSeason: Summer,
		Budget: Cheap, Lat: 7.4088, Lon: 81.8200},

	{ID: "vavuniya", Type: Urban, Region: North, Climate: Dry, BestSeason: Summer,
		Budget: Cheap, Lat: 8.7514, Lon: 80.4971},

	{ID: "mannar", Type: Urban, Region: North, Climate: Dry, BestSeason: Summer,
		Budget: Cheap, Lat: 8.9810, Lon: 79.9042, Attractions: []string{"adams_bridge"}},

	{ID: "puttalam", Type: Urban, Region: NorthWestern, Climate: Tropical, BestSeason: AllYear,
		Budget: Cheap, Lat: 8.0362, Lon: 79.8283, Attractions: []string{"kalpitiya"}},

	{ID: "chilaw", Type: Urban, Region: NorthWestern, Climate: Tropical, BestSeason: AllYear,
		Budget: Cheap, Lat: 7.5758, Lon: 79.7953, Attractions: []string{"munneswaram_temple"}},

	{ID: "matale", Type: Urban, Region: Central, Climate: Mild, BestSeason: AllYear,
		Budget: Cheap, Lat: 7.4675, Lon: 80.6234, Attractions: []string{"aluvihare_temple", "spice_gardens"}},

	{ID: "ampara", Type: Urban, Region: East, Climate: Tropical, BestSeason: Summer,
		Budget: Cheap, Lat: 7.2978, Lon: 81.6722},

	{ID: "monaragala", Type: Urban, Region: Uva, Climate: Dry, BestSeason: AllYear,
		Budget: Cheap, Lat: 6.8723, Lon: 81.3507},

	{ID: "kegalle", Type: Urban, Region: Sabaragamuwa, Climate: Mild, BestSeason: AllYear,
		Budget: Cheap, Lat: 7.2523, Lon: 80.3436, Attractions: []string{"pinnawala_elephant_orphanage"}},

	{ID: "kalutara", Type: Beach, Region: West, Climate: Tropical, BestSeason: Winter,
		Budget: Moderate, Lat: 6.5854, Lon: 79.9607, Attractions: []string{"kalutara_temple"}},

	{ID: "hikkaduwa", Type: Beach, Region: South, Climate: Tropical, BestSeason: Winter,
		Budget: Moderate, Lat: 6.1409, Lon: 80.1001, Attractions: []string{"coral_reefs", "turtle_hatchery"}},

	{ID: "unawatuna", Type: Beach, Region: South, Climate: Tropical, BestSeason: Winter,
		Budget: Moderate, Lat: 6.0108, Lon: 80.2490, Attractions: []string{"beach"}},

	{ID: "nilaveli", Type: Beach, Region: East, Climate: Tropical, BestSeason: Summer,
		Budget: Moderate, Lat: 8.6977, Lon: 81.1884, Attractions: []string{"pigeon_island_beach"}},

	{ID: "passikudah", Type: Beach, Region: East, Climate: Tropical, BestSeason: Summer,
		Budget: Moderate, Lat: 7.9362, Lon: 81.5579, Attractions: []string{"beach"}},

	{ID: "haputale", Type: HillCountry, Region: Uva, Climate: Cool, BestSeason: AllYear,
		Budget: Cheap, Lat: 6.7679, Lon: 80.9564, Attractions: []string{"liptons_seat"}},

	{ID: "bandarawela", Type: HillCountry, Region: Uva, Climate: Mild, BestSeason: AllYear,
		Budget: Cheap, Lat: 6.8323, Lon: 80.9856},

	{ID: "gampaha", Type: Urban, Region: West, Climate: Tropical, BestSeason: AllYear,
		Budget: Cheap, Lat: 7.0905, Lon: 79.9996},

	{ID: "kilinochchi", Type: Urban, Region: North, Climate: Dry, BestSeason: Summer,
		Budget: Cheap, Lat: 9.3965, Lon: 80.3999},

	{ID: "mullativu", Type: Urban, Region: North, Climate: Dry, BestSeason: Summer,
		Budget: Cheap, Lat: 9.2671, Lon: 80.8142},
}

// srilankaConnections is the bidirectional road network, distances in km.
var srilankaConnections = []Connection{
	// Main west coast corridor
	{A: "colombo", B: "negombo", Km: 34},
	{A: "colombo", B: "galle", Km: 119},
	{A: "colombo", B: "bentota", Km: 65},
	{A: "bentota", B: "galle", Km: 56},
	{A: "galle", B: "mirissa", Km: 36},
	{A: "mirissa", B: "matara", Km: 12},
	{A: "matara", B: "hambantota", Km: 80},

	// Central highlands
	{A: "colombo", B: "kandy", Km: 115},
	{A: "negombo", B: "kandy", Km: 100},
	{A: "kandy", B: "nuwara_eliya", Km: 77},
	{A: "nuwara_eliya", B: "ella", Km: 60},
	{A: "kandy", B: "badulla", Km: 137},
	{A: "badulla", B: "ella", Km: 28},
	{A: "kandy", B: "horton_plains", Km: 60},

	// Cultural triangle
	{A: "colombo", B: "anuradhapura", Km: 205},
	{A: "kandy", B: "dambulla", Km: 72},
	{A: "dambulla", B: "sigiriya", Km: 17},
	{A: "kandy", B: "sigiriya", Km: 90},
	{A: "anuradhapura", B: "sigiriya", Km: 22},
	{A: "sigiriya", B: "polonnaruwa", Km: 60},

	// East coast
	{A: "polonnaruwa", B: "trincomalee", Km: 107},
	{A: "trincomalee", B: "anuradhapura", Km: 110},

	// North
	{A: "anuradhapura", B: "jaffna", Km: 200},

	// Southeast
	{A: "ella", B: "yala", Km: 130},
	{A: "hambantota", B: "yala", Km: 60},
	{A: "arugam_bay", B: "yala", Km: 160},
	{A: "arugam_bay", B: "ella", Km: 165},

	// Additional west coast connections
	{A: "colombo", B: "kalutara", Km: 43},
	{A: "kalutara", B: "bentota", Km: 22},
	{A: "galle", B: "hikkaduwa", Km: 18},
	{A: "hikkaduwa", B: "bentota", Km: 38},
	{A: "galle", B: "unawatuna", Km: 6},
	{A: "negombo", B: "gampaha", Km: 18},
	{A: "gampaha", B: "colombo", Km: 30},

	// North-western connections
	{A: "colombo", B: "kurunegala", Km: 94},
	{A: "kurunegala", B: "chilaw", Km: 50},
	{A: "chilaw", B: "puttalam", Km: 33},
	{A: "puttalam", B: "anuradhapura", Km: 90},
	{A: "kurunegala", B: "dambulla", Km: 70},
	{A: "kurunegala", B: "kandy", Km: 42},
	{A: "negombo", B: "chilaw", Km: 60},

	// Sabaragamuwa connections
	{A: "colombo", B: "ratnapura", Km: 101},
	{A: "ratnapura", B: "nuwara_eliya", Km: 110},
	{A: "ratnapura", B: "ella", Km: 130},
	{A: "kegalle", B: "colombo", Km: 78},
	{A: "kegalle", B: "kandy", Km: 37},
	{A: "kegalle", B: "kurunegala", Km: 43},
	{A: "kegalle", B: "ratnapura", Km: 75},

	// Central connections
	{A: "kandy", B: "matale", Km: 26},
	{A: "matale", B: "dambulla", Km: 43},
	{A: "matale", B: "sigiriya", Km: 54},

	// Uva province connections
	{A: "ella", B: "haputale", Km: 16},
	{A: "haputale", B: "bandarawela", Km: 9},
	{A: "bandarawela", B: "badulla", Km: 25},
	{A: "badulla", B: "monaragala", Km: 60},
	{A: "monaragala", B: "yala", Km: 90},
	{A: "monaragala", B: "arugam_bay", Km: 98},

	// East coast expansion
	{A: "trincomalee", B: "nilaveli", Km: 16},
	{A: "trincomalee", B: "batticaloa", Km: 108},
	{A: "batticaloa", B: "passikudah", Km: 35},
	{A: "batticaloa", B: "kalmunai", Km: 38},
	{A: "batticaloa", B: "ampara", Km: 33},
	{A: "ampara", B: "arugam_bay", Km: 115},
	{A: "kalmunai", B: "arugam_bay", Km: 80},

	// Northern connections
	{A: "jaffna", B: "kilinochchi", Km: 60},
	{A: "kilinochchi", B: "vavuniya", Km: 58},
	{A: "vavuniya", B: "anuradhapura", Km: 70},
	{A: "jaffna", B: "mannar", Km: 132},
	{A: "mannar", B: "vavuniya", Km: 86},
	{A: "mannar", B: "puttalam", Km: 150},
	{A: "kilinochchi", B: "mullativu", Km: 48},
}
