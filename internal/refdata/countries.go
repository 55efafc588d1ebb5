package refdata

import "github.com/mfeld/parity-pulse/internal/model"

// defaultCountries is the built-in country table. The USA entry comes
// first and anchors the PPP baseline at 1.0; the order is otherwise fixed
// so that results are reproducible.
var defaultCountries = []model.Country{
	{Code: "USA", Name: "United States", Latitude: 37.0902, Longitude: -95.7129, PPPFactor: 1.0, ProfessionalWage: 120000, MinimumWage: 31200},
	{Code: "GBR", Name: "United Kingdom", Latitude: 55.3781, Longitude: -3.436, PPPFactor: 0.69, ProfessionalWage: 85000, MinimumWage: 24000},
	{Code: "DEU", Name: "Germany", Latitude: 51.1657, Longitude: 10.4515, PPPFactor: 0.74, ProfessionalWage: 95000, MinimumWage: 26000},
	{Code: "FRA", Name: "France", Latitude: 46.2276, Longitude: 2.2137, PPPFactor: 0.73, ProfessionalWage: 80000, MinimumWage: 22000},
	{Code: "JPN", Name: "Japan", Latitude: 36.2048, Longitude: 138.2529, PPPFactor: 0.96, ProfessionalWage: 90000, MinimumWage: 20000},
	{Code: "CHN", Name: "China", Latitude: 35.8617, Longitude: 104.1954, PPPFactor: 0.42, ProfessionalWage: 45000, MinimumWage: 5500},
	{Code: "IND", Name: "India", Latitude: 20.5937, Longitude: 78.9629, PPPFactor: 0.24, ProfessionalWage: 35000, MinimumWage: 2400},
	{Code: "BRA", Name: "Brazil", Latitude: -14.235, Longitude: -51.9253, PPPFactor: 0.37, ProfessionalWage: 40000, MinimumWage: 4800},
	{Code: "CAN", Name: "Canada", Latitude: 56.1304, Longitude: -106.3468, PPPFactor: 0.81, ProfessionalWage: 110000, MinimumWage: 32000},
	{Code: "AUS", Name: "Australia", Latitude: -25.2744, Longitude: 133.7751, PPPFactor: 0.96, ProfessionalWage: 115000, MinimumWage: 42000},
	{Code: "MEX", Name: "Mexico", Latitude: 23.6345, Longitude: -102.5528, PPPFactor: 0.45, ProfessionalWage: 45000, MinimumWage: 4200},
	{Code: "KOR", Name: "South Korea", Latitude: 35.9078, Longitude: 127.7669, PPPFactor: 0.76, ProfessionalWage: 85000, MinimumWage: 22000},
	{Code: "ESP", Name: "Spain", Latitude: 40.4637, Longitude: -3.7492, PPPFactor: 0.62, ProfessionalWage: 60000, MinimumWage: 16000},
	{Code: "ITA", Name: "Italy", Latitude: 41.8719, Longitude: 12.5674, PPPFactor: 0.66, ProfessionalWage: 65000, MinimumWage: 14000},
	{Code: "RUS", Name: "Russia", Latitude: 61.524, Longitude: 105.3188, PPPFactor: 0.28, ProfessionalWage: 35000, MinimumWage: 3600},
	{Code: "NLD", Name: "Netherlands", Latitude: 52.1326, Longitude: 5.2913, PPPFactor: 0.77, ProfessionalWage: 100000, MinimumWage: 28000},
	{Code: "CHE", Name: "Switzerland", Latitude: 46.8182, Longitude: 8.2275, PPPFactor: 1.24, ProfessionalWage: 150000, MinimumWage: 52000},
	{Code: "SWE", Name: "Sweden", Latitude: 60.1282, Longitude: 18.6435, PPPFactor: 0.89, ProfessionalWage: 95000, MinimumWage: 28000},
	{Code: "NOR", Name: "Norway", Latitude: 60.472, Longitude: 8.4689, PPPFactor: 1.18, ProfessionalWage: 120000, MinimumWage: 42000},
	{Code: "DNK", Name: "Denmark", Latitude: 56.2639, Longitude: 9.5018, PPPFactor: 0.92, ProfessionalWage: 105000, MinimumWage: 38000},
	{Code: "POL", Name: "Poland", Latitude: 51.9194, Longitude: 19.1451, PPPFactor: 0.45, ProfessionalWage: 50000, MinimumWage: 10000},
	{Code: "ARG", Name: "Argentina", Latitude: -38.4161, Longitude: -63.6167, PPPFactor: 0.28, ProfessionalWage: 30000, MinimumWage: 3600},
	{Code: "TUR", Name: "Turkey", Latitude: 38.9637, Longitude: 35.2433, PPPFactor: 0.35, ProfessionalWage: 35000, MinimumWage: 6000},
	{Code: "THA", Name: "Thailand", Latitude: 15.87, Longitude: 100.9925, PPPFactor: 0.36, ProfessionalWage: 40000, MinimumWage: 5000},
	{Code: "VNM", Name: "Vietnam", Latitude: 14.0583, Longitude: 108.2772, PPPFactor: 0.31, ProfessionalWage: 30000, MinimumWage: 3600},
	{Code: "IDN", Name: "Indonesia", Latitude: -0.7893, Longitude: 113.9213, PPPFactor: 0.33, ProfessionalWage: 35000, MinimumWage: 4200},
	{Code: "MYS", Name: "Malaysia", Latitude: 4.2105, Longitude: 101.9758, PPPFactor: 0.46, ProfessionalWage: 50000, MinimumWage: 7200},
	{Code: "SGP", Name: "Singapore", Latitude: 1.3521, Longitude: 103.8198, PPPFactor: 0.85, ProfessionalWage: 130000, MinimumWage: 18000},
	{Code: "PHL", Name: "Philippines", Latitude: 12.8797, Longitude: 121.774, PPPFactor: 0.36, ProfessionalWage: 30000, MinimumWage: 3600},
	{Code: "ZAF", Name: "South Africa", Latitude: -30.5595, Longitude: 22.9375, PPPFactor: 0.35, ProfessionalWage: 50000, MinimumWage: 5400},
	{Code: "EGY", Name: "Egypt", Latitude: 26.8206, Longitude: 30.8025, PPPFactor: 0.22, ProfessionalWage: 25000, MinimumWage: 2400},
	{Code: "NGA", Name: "Nigeria", Latitude: 9.082, Longitude: 8.6753, PPPFactor: 0.28, ProfessionalWage: 30000, MinimumWage: 1800},
	{Code: "ISR", Name: "Israel", Latitude: 31.0461, Longitude: 34.8516, PPPFactor: 0.82, ProfessionalWage: 110000, MinimumWage: 22000},
	{Code: "UAE", Name: "UAE", Latitude: 23.4241, Longitude: 53.8478, PPPFactor: 0.72, ProfessionalWage: 100000, MinimumWage: 9600},
	{Code: "BHR", Name: "Bahrain", Latitude: 26.2285, Longitude: 50.586, PPPFactor: 0.65, ProfessionalWage: 75000, MinimumWage: 9000},
	{Code: "SAU", Name: "Saudi Arabia", Latitude: 23.8859, Longitude: 45.0792, PPPFactor: 0.54, ProfessionalWage: 80000, MinimumWage: 12000},
	{Code: "NZL", Name: "New Zealand", Latitude: -40.9006, Longitude: 174.886, PPPFactor: 0.91, ProfessionalWage: 95000, MinimumWage: 36000},
	{Code: "IRL", Name: "Ireland", Latitude: 53.1424, Longitude: -7.6921, PPPFactor: 0.84, ProfessionalWage: 100000, MinimumWage: 26000},
	{Code: "PRT", Name: "Portugal", Latitude: 39.3999, Longitude: -8.2245, PPPFactor: 0.54, ProfessionalWage: 50000, MinimumWage: 11000},
	{Code: "GRC", Name: "Greece", Latitude: 39.0742, Longitude: 21.8243, PPPFactor: 0.52, ProfessionalWage: 45000, MinimumWage: 10000},
	{Code: "CZE", Name: "Czech Republic", Latitude: 49.8175, Longitude: 15.473, PPPFactor: 0.48, ProfessionalWage: 55000, MinimumWage: 12000},
	{Code: "HUN", Name: "Hungary", Latitude: 47.1625, Longitude: 19.5033, PPPFactor: 0.42, ProfessionalWage: 45000, MinimumWage: 9000},
	{Code: "AUT", Name: "Austria", Latitude: 47.5162, Longitude: 14.5501, PPPFactor: 0.78, ProfessionalWage: 95000, MinimumWage: 24000},
	{Code: "BEL", Name: "Belgium", Latitude: 50.5039, Longitude: 4.4699, PPPFactor: 0.76, ProfessionalWage: 90000, MinimumWage: 24000},
	{Code: "FIN", Name: "Finland", Latitude: 61.9241, Longitude: 25.7482, PPPFactor: 0.88, ProfessionalWage: 90000, MinimumWage: 26000},
	{Code: "CHL", Name: "Chile", Latitude: -35.6751, Longitude: -71.543, PPPFactor: 0.48, ProfessionalWage: 50000, MinimumWage: 7200},
	{Code: "COL", Name: "Colombia", Latitude: 4.5709, Longitude: -74.2973, PPPFactor: 0.35, ProfessionalWage: 35000, MinimumWage: 3600},
	{Code: "PER", Name: "Peru", Latitude: -9.19, Longitude: -75.0152, PPPFactor: 0.38, ProfessionalWage: 40000, MinimumWage: 4200},
	{Code: "PAK", Name: "Pakistan", Latitude: 30.3753, Longitude: 69.3451, PPPFactor: 0.24, ProfessionalWage: 25000, MinimumWage: 1800},
	{Code: "BGD", Name: "Bangladesh", Latitude: 23.685, Longitude: 90.3563, PPPFactor: 0.28, ProfessionalWage: 20000, MinimumWage: 1200},
	{Code: "UKR", Name: "Ukraine", Latitude: 48.3794, Longitude: 31.1656, PPPFactor: 0.28, ProfessionalWage: 35000, MinimumWage: 4800},
}
