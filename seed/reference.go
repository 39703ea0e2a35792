// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import "github.com/danielhkuo/whr-dashboard/models"

// ReferenceRegions returns the ten World Happiness Report regions.
func ReferenceRegions() []models.Region {
	return []models.Region{
		{ID: 1, Name: "South Asia"},
		{ID: 2, Name: "Central and Eastern Europe"},
		{ID: 3, Name: "Sub-Saharan Africa"},
		{ID: 4, Name: "Latin America and Caribbean"},
		{ID: 5, Name: "Commonwealth of Independent States"},
		{ID: 6, Name: "North America and ANZ"},
		{ID: 7, Name: "Western Europe"},
		{ID: 8, Name: "Southeast Asia"},
		{ID: 9, Name: "East Asia"},
		{ID: 10, Name: "Middle East and North Africa"},
	}
}

// ReferenceCountries returns every country that appears in a yearly report
// between 2015 and 2024. Spelling variants used by later editions
// (Czechia, Turkiye, ...) are separate countries.
func ReferenceCountries() []models.Country {
	return []models.Country{
		{ID: 1, Name: "Switzerland", RegionID: 7},
		{ID: 2, Name: "Iceland", RegionID: 7},
		{ID: 3, Name: "Denmark", RegionID: 7},
		{ID: 4, Name: "Norway", RegionID: 7},
		{ID: 5, Name: "Canada", RegionID: 6},
		{ID: 6, Name: "Finland", RegionID: 7},
		{ID: 7, Name: "Netherlands", RegionID: 7},
		{ID: 8, Name: "Sweden", RegionID: 7},
		{ID: 9, Name: "New Zealand", RegionID: 6},
		{ID: 10, Name: "Australia", RegionID: 6},
		{ID: 11, Name: "Israel", RegionID: 10},
		{ID: 12, Name: "Costa Rica", RegionID: 4},
		{ID: 13, Name: "Austria", RegionID: 7},
		{ID: 14, Name: "Mexico", RegionID: 4},
		{ID: 15, Name: "United States", RegionID: 6},
		{ID: 16, Name: "Brazil", RegionID: 4},
		{ID: 17, Name: "Luxembourg", RegionID: 7},
		{ID: 18, Name: "Ireland", RegionID: 7},
		{ID: 19, Name: "Belgium", RegionID: 7},
		{ID: 20, Name: "United Arab Emirates", RegionID: 10},
		{ID: 21, Name: "United Kingdom", RegionID: 7},
		{ID: 22, Name: "Oman", RegionID: 10},
		{ID: 23, Name: "Venezuela", RegionID: 4},
		{ID: 24, Name: "Singapore", RegionID: 8},
		{ID: 25, Name: "Panama", RegionID: 4},
		{ID: 26, Name: "Germany", RegionID: 7},
		{ID: 27, Name: "Chile", RegionID: 4},
		{ID: 28, Name: "Qatar", RegionID: 10},
		{ID: 29, Name: "France", RegionID: 7},
		{ID: 30, Name: "Argentina", RegionID: 4},
		{ID: 31, Name: "Czech Republic", RegionID: 2},
		{ID: 32, Name: "Uruguay", RegionID: 4},
		{ID: 33, Name: "Colombia", RegionID: 4},
		{ID: 34, Name: "Thailand", RegionID: 8},
		{ID: 35, Name: "Saudi Arabia", RegionID: 10},
		{ID: 36, Name: "Spain", RegionID: 7},
		{ID: 37, Name: "Malta", RegionID: 7},
		{ID: 38, Name: "Kuwait", RegionID: 10},
		{ID: 39, Name: "Suriname", RegionID: 4},
		{ID: 40, Name: "Trinidad and Tobago", RegionID: 4},
		{ID: 41, Name: "El Salvador", RegionID: 4},
		{ID: 42, Name: "Guatemala", RegionID: 4},
		{ID: 43, Name: "Uzbekistan", RegionID: 5},
		{ID: 44, Name: "Slovakia", RegionID: 2},
		{ID: 45, Name: "Japan", RegionID: 9},
		{ID: 46, Name: "South Korea", RegionID: 9},
		{ID: 47, Name: "Ecuador", RegionID: 4},
		{ID: 48, Name: "Bahrain", RegionID: 10},
		{ID: 49, Name: "Italy", RegionID: 7},
		{ID: 50, Name: "Bolivia", RegionID: 4},
		{ID: 51, Name: "Moldova", RegionID: 5},
		{ID: 52, Name: "Paraguay", RegionID: 4},
		{ID: 53, Name: "Kazakhstan", RegionID: 5},
		{ID: 54, Name: "Slovenia", RegionID: 2},
		{ID: 55, Name: "Lithuania", RegionID: 2},
		{ID: 56, Name: "Nicaragua", RegionID: 4},
		{ID: 57, Name: "Peru", RegionID: 4},
		{ID: 58, Name: "Belarus", RegionID: 5},
		{ID: 59, Name: "Poland", RegionID: 2},
		{ID: 60, Name: "Malaysia", RegionID: 8},
		{ID: 61, Name: "Croatia", RegionID: 2},
		{ID: 62, Name: "Libya", RegionID: 10},
		{ID: 63, Name: "Russia", RegionID: 5},
		{ID: 64, Name: "Jamaica", RegionID: 4},
		{ID: 65, Name: "North Cyprus", RegionID: 7},
		{ID: 66, Name: "Cyprus", RegionID: 7},
		{ID: 67, Name: "Algeria", RegionID: 10},
		{ID: 68, Name: "Kosovo", RegionID: 2},
		{ID: 69, Name: "Turkmenistan", RegionID: 5},
		{ID: 70, Name: "Mauritius", RegionID: 3},
		{ID: 71, Name: "Estonia", RegionID: 2},
		{ID: 72, Name: "Indonesia", RegionID: 8},
		{ID: 73, Name: "Vietnam", RegionID: 8},
		{ID: 74, Name: "Turkey", RegionID: 10},
		{ID: 75, Name: "Kyrgyzstan", RegionID: 5},
		{ID: 76, Name: "Nigeria", RegionID: 3},
		{ID: 77, Name: "Bhutan", RegionID: 1},
		{ID: 78, Name: "Azerbaijan", RegionID: 5},
		{ID: 79, Name: "Pakistan", RegionID: 1},
		{ID: 80, Name: "Montenegro", RegionID: 2},
		{ID: 81, Name: "Jordan", RegionID: 10},
		{ID: 82, Name: "Zambia", RegionID: 3},
		{ID: 83, Name: "Romania", RegionID: 2},
		{ID: 84, Name: "Serbia", RegionID: 2},
		{ID: 85, Name: "Portugal", RegionID: 7},
		{ID: 86, Name: "Latvia", RegionID: 2},
		{ID: 87, Name: "Philippines", RegionID: 8},
		{ID: 88, Name: "Somaliland region", RegionID: 3},
		{ID: 89, Name: "Morocco", RegionID: 10},
		{ID: 90, Name: "Macedonia", RegionID: 2},
		{ID: 91, Name: "Mozambique", RegionID: 3},
		{ID: 92, Name: "Albania", RegionID: 2},
		{ID: 93, Name: "Bosnia and Herzegovina", RegionID: 2},
		{ID: 94, Name: "Lesotho", RegionID: 3},
		{ID: 95, Name: "Dominican Republic", RegionID: 4},
		{ID: 96, Name: "Laos", RegionID: 8},
		{ID: 97, Name: "Mongolia", RegionID: 9},
		{ID: 98, Name: "Swaziland", RegionID: 3},
		{ID: 99, Name: "Greece", RegionID: 7},
		{ID: 100, Name: "Lebanon", RegionID: 10},
		{ID: 101, Name: "Hungary", RegionID: 2},
		{ID: 102, Name: "Honduras", RegionID: 4},
		{ID: 103, Name: "Tajikistan", RegionID: 5},
		{ID: 104, Name: "Tunisia", RegionID: 10},
		{ID: 105, Name: "Palestinian Territories", RegionID: 10},
		{ID: 106, Name: "Bangladesh", RegionID: 1},
		{ID: 107, Name: "Iran", RegionID: 10},
		{ID: 108, Name: "Ukraine", RegionID: 5},
		{ID: 109, Name: "Iraq", RegionID: 10},
		{ID: 110, Name: "South Africa", RegionID: 3},
		{ID: 111, Name: "Ghana", RegionID: 3},
		{ID: 112, Name: "Zimbabwe", RegionID: 3},
		{ID: 113, Name: "Liberia", RegionID: 3},
		{ID: 114, Name: "India", RegionID: 1},
		{ID: 115, Name: "Sudan", RegionID: 3},
		{ID: 116, Name: "Haiti", RegionID: 4},
		{ID: 117, Name: "Democratic Republic of the Congo", RegionID: 3},
		{ID: 118, Name: "Nepal", RegionID: 1},
		{ID: 119, Name: "Ethiopia", RegionID: 3},
		{ID: 120, Name: "Sierra Leone", RegionID: 3},
		{ID: 121, Name: "Mauritania", RegionID: 3},
		{ID: 122, Name: "Kenya", RegionID: 3},
		{ID: 123, Name: "Djibouti", RegionID: 3},
		{ID: 124, Name: "Armenia", RegionID: 5},
		{ID: 125, Name: "Botswana", RegionID: 3},
		{ID: 126, Name: "Myanmar", RegionID: 8},
		{ID: 127, Name: "Georgia", RegionID: 5},
		{ID: 128, Name: "Malawi", RegionID: 3},
		{ID: 129, Name: "Sri Lanka", RegionID: 1},
		{ID: 130, Name: "Cameroon", RegionID: 3},
		{ID: 131, Name: "Bulgaria", RegionID: 2},
		{ID: 132, Name: "Egypt", RegionID: 10},
		{ID: 133, Name: "Yemen", RegionID: 10},
		{ID: 134, Name: "Angola", RegionID: 3},
		{ID: 135, Name: "Mali", RegionID: 3},
		{ID: 136, Name: "Republic of the Congo", RegionID: 3},
		{ID: 137, Name: "Comoros", RegionID: 3},
		{ID: 138, Name: "Uganda", RegionID: 3},
		{ID: 139, Name: "Senegal", RegionID: 3},
		{ID: 140, Name: "Gabon", RegionID: 3},
		{ID: 141, Name: "Niger", RegionID: 3},
		{ID: 142, Name: "Cambodia", RegionID: 8},
		{ID: 143, Name: "Tanzania", RegionID: 3},
		{ID: 144, Name: "Madagascar", RegionID: 3},
		{ID: 145, Name: "Central African Republic", RegionID: 3},
		{ID: 146, Name: "Chad", RegionID: 3},
		{ID: 147, Name: "Guinea", RegionID: 3},
		{ID: 148, Name: "Ivory Coast", RegionID: 3},
		{ID: 149, Name: "Burkina Faso", RegionID: 3},
		{ID: 150, Name: "Afghanistan", RegionID: 1},
		{ID: 151, Name: "Rwanda", RegionID: 3},
		{ID: 152, Name: "Benin", RegionID: 3},
		{ID: 153, Name: "Syria", RegionID: 10},
		{ID: 154, Name: "Burundi", RegionID: 3},
		{ID: 155, Name: "Togo", RegionID: 3},
		{ID: 156, Name: "Somalia", RegionID: 3},
		{ID: 157, Name: "South Sudan", RegionID: 3},
		{ID: 158, Name: "Namibia", RegionID: 3},
		{ID: 159, Name: "Belize", RegionID: 4},
		{ID: 160, Name: "Puerto Rico", RegionID: 4},
		{ID: 161, Name: "Taiwan", RegionID: 9},
		{ID: 162, Name: "China", RegionID: 9},
		{ID: 163, Name: "Argelia", RegionID: 10},
		{ID: 164, Name: "Trinidad & Tobago", RegionID: 4},
		{ID: 165, Name: "Gambia", RegionID: 3},
		{ID: 166, Name: "Maldives", RegionID: 1},
		{ID: 167, Name: "North Macedonia", RegionID: 2},
		{ID: 168, Name: "Czechia", RegionID: 2},
		{ID: 169, Name: "Eswatini", RegionID: 3},
		{ID: 170, Name: "State of Palestine", RegionID: 10},
		{ID: 171, Name: "Turkiye", RegionID: 10},
	}
}
