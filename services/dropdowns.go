package services

// RegionOptions lists the project regions priced in the rate table.
var RegionOptions = []string{
	"Mumbai City",
	"Mumbai Suburban",
	"Navi Mumbai",
	"ROM",
	"Raigad",
}

// CategoryOptions lists the developer categories used as the rate-table
// lookup axis.
var CategoryOptions = []string{
	"Category 1",
	"Category 2",
}

// ValidityOptions lists the offered quotation validity periods.
var ValidityOptions = []string{
	"7 days",
	"15 days",
	"30 days",
}

// PaymentScheduleOptions lists the offered advance-payment splits.
var PaymentScheduleOptions = []string{
	"50%",
	"70%",
	"100%",
}

// PackageOptions lists the client-facing package labels in tier order.
var PackageOptions = []string{
	"Package A",
	"Package B",
	"Package C",
	"Package D",
}
