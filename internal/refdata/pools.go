// Package refdata holds the immutable reference pools the field synthesizers
// draw from: Seattle streets and zip codes, metro area codes, and the
// per-category business name fragments. Pure data, loaded once, never mutated.
package refdata

import "github.com/sells-group/bizgen/internal/taxonomy"

// Streets lists Seattle street names and arterials used in addresses.
var Streets = []string{
	"Pine St", "Pike St", "1st Ave", "2nd Ave", "3rd Ave", "4th Ave", "5th Ave", "6th Ave",
	"Madison St", "Spring St", "Seneca St", "University St", "Union St", "Stewart St",
	"Capitol Hill", "Fremont Ave N", "Ballard Ave NW", "Queen Anne Ave N", "Magnolia Blvd W",
	"Broadway", "15th Ave E", "23rd Ave", "Rainier Ave S", "California Ave SW", "Alki Ave SW",
	"Westlake Ave N", "Dexter Ave N", "Aurora Ave N", "Stone Way N", "Greenwood Ave N",
	"Roosevelt Way NE", "Sand Point Way NE", "Lake City Way NE", "Bothell Way NE",
	"Martin Luther King Jr Way S", "Beacon Ave S", "Georgetown", "Industrial Way S",
	"Highland Park Way SW", "Delridge Way SW", "35th Ave SW",
}

// ZipCodes lists Seattle-area zip codes.
var ZipCodes = []string{
	"98101", "98102", "98103", "98104", "98105", "98106",
	"98107", "98108", "98109", "98112", "98115", "98116",
	"98117", "98118", "98119", "98121", "98122", "98125",
	"98126", "98133", "98136", "98144", "98146", "98154",
}

// AreaCodes lists the Seattle metro area codes valid for generated phones.
var AreaCodes = []string{"206", "425", "253"}

// MiddleWords are optional business name connectors.
var MiddleWords = []string{"& Co", "Group", "Center", "Studio", "House", "Place", "Express", "Plus"}

// SuiteLabels are unit designators occasionally appended to addresses.
var SuiteLabels = []string{"Suite", "Unit", "Ste", "#"}

// namePrefixes maps category to business name openers.
var namePrefixes = map[taxonomy.Category][]string{
	taxonomy.CategoryFood: {
		"Seattle", "Pike Place", "Capitol Hill", "Fremont", "Ballard", "Queen Anne",
		"The", "Emerald City", "Pacific", "Northwest", "Urban", "Artisan", "Gourmet",
		"Fresh", "Local", "Farm", "Organic", "Craft", "Rustic", "Modern", "Classic",
	},
	taxonomy.CategorySalon: {
		"Elite", "Luxe", "Chic", "Modern", "Classic", "Urban", "Bella", "Glamour",
		"Studio", "The", "Seattle", "Emerald", "Platinum", "Gold", "Diamond", "Premier",
	},
	taxonomy.CategoryBeauty: {
		"Serenity", "Bliss", "Harmony", "Zen", "Pure", "Radiance", "Tranquil",
		"Divine", "Luxe", "Spa", "Rejuvenate", "Refresh", "Glow", "Beauty", "Elegant",
	},
	taxonomy.CategoryHealthcare: {
		"Seattle", "Northwest", "Family", "Care", "Medical", "Health", "Wellness",
		"Prime", "Advanced", "Complete", "Comprehensive", "Professional", "Expert",
	},
	taxonomy.CategoryRetail: {
		"Seattle", "Urban", "Modern", "Classic", "Boutique", "The", "Pacific",
		"Northwest", "Emerald", "Trendy", "Chic", "Style", "Fashion", "Unique",
	},
	taxonomy.CategoryServices: {
		"Seattle", "Professional", "Premier", "Elite", "Northwest", "Expert",
		"Reliable", "Quality", "Trusted", "Superior", "Excellence", "Prime",
	},
	taxonomy.CategoryEntertainment: {
		"Seattle", "Urban", "Elite", "Prime", "Northwest", "Active", "Fitness",
		"Peak", "Ultimate", "Power", "Energy", "Dynamic", "Strong",
	},
	taxonomy.CategoryEducation: {
		"Seattle", "Learning", "Academic", "Knowledge", "Bright", "Future",
		"Excellence", "Success", "Achievement", "Discovery", "Wisdom",
	},
}

// nameSuffixes maps category to business name closers.
var nameSuffixes = map[taxonomy.Category][]string{
	taxonomy.CategoryFood: {
		"Bistro", "Cafe", "Kitchen", "Grill", "House", "Restaurant", "Eatery", "Bar",
		"Tavern", "Bakery", "Deli", "Pizzeria", "Steakhouse", "Brewery", "Lounge",
	},
	taxonomy.CategorySalon: {
		"Salon", "Hair Studio", "Barbershop", "Hair Lounge", "Styling", "Hair Care",
		"Beauty Bar", "Hair Gallery", "Style Studio", "Cut & Color",
	},
	taxonomy.CategoryBeauty: {
		"Spa", "Day Spa", "Wellness Center", "Beauty Studio", "Nail Salon",
		"Massage Therapy", "Aesthetics", "Skincare", "Beauty Lounge", "Retreat",
	},
	taxonomy.CategoryHealthcare: {
		"Medical Center", "Clinic", "Family Practice", "Dental Care", "Pharmacy",
		"Veterinary Clinic", "Health Center", "Medical Group", "Urgent Care",
	},
	taxonomy.CategoryRetail: {
		"Boutique", "Store", "Shop", "Emporium", "Gallery", "Market", "Electronics",
		"Books", "Apparel", "Outlet", "Fashion", "Goods",
	},
	taxonomy.CategoryServices: {
		"Law Firm", "Accounting", "Real Estate", "Auto Repair", "Consulting",
		"Agency", "Solutions", "Services", "Group", "Associates",
	},
	taxonomy.CategoryEntertainment: {
		"Fitness", "Gym", "Theater", "Entertainment", "Sports Club",
		"Recreation", "Center", "Studio", "Arena", "Complex",
	},
	taxonomy.CategoryEducation: {
		"Academy", "Learning Center", "School", "Institute", "Library",
		"Education Center", "Training", "College", "University",
	},
}

// NamePrefixes returns the name opener pool for a category, or nil when the
// category has no dedicated pool (Automotive and Professional fall back to
// the generic name template).
func NamePrefixes(c taxonomy.Category) []string {
	return namePrefixes[c]
}

// NameSuffixes returns the name closer pool for a category, or nil.
func NameSuffixes(c taxonomy.Category) []string {
	return nameSuffixes[c]
}
