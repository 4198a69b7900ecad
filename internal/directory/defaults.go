package directory

// DefaultAuthorities is a small built-in contact table used when no
// authorities file is supplied. Real deployments load the full national
// directory from data/authorities.yaml.
func DefaultAuthorities() []Authority {
	return []Authority{
		{
			Name:             "Birmingham City Council",
			Phone:            "0121 303 1234",
			Email:            "acap@birmingham.gov.uk",
			Website:          "https://www.birmingham.gov.uk/adult-social-care",
			PostcodePrefixes: []string{"B"},
		},
		{
			Name:             "Leeds City Council",
			Phone:            "0113 222 4401",
			Email:            "adults@leeds.gov.uk",
			Website:          "https://www.leeds.gov.uk/adult-social-care",
			PostcodePrefixes: []string{"LS"},
		},
		{
			Name:             "Manchester City Council",
			Phone:            "0161 234 5001",
			Email:            "mcsreply@manchester.gov.uk",
			Website:          "https://www.manchester.gov.uk/social-care",
			PostcodePrefixes: []string{"M"},
		},
		{
			Name:             "Westminster City Council",
			Phone:            "020 7641 1444",
			Email:            "adultsocialcare@westminster.gov.uk",
			Website:          "https://www.westminster.gov.uk/adult-social-care",
			PostcodePrefixes: []string{"SW1", "W1", "W2", "NW1"},
		},
		{
			Name:             "Bristol City Council",
			Phone:            "0117 922 2700",
			Email:            "adult.care@bristol.gov.uk",
			Website:          "https://www.bristol.gov.uk/social-care-health",
			PostcodePrefixes: []string{"BS"},
		},
	}
}

// Default builds a directory from the built-in table.
func Default() *Directory {
	d, err := New(DefaultAuthorities())
	if err != nil {
		panic("built-in authority directory is invalid: " + err.Error())
	}
	return d
}
