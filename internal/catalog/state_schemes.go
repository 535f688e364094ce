package catalog

var stateSchemes = []StateScheme{
	{
		ID:          "ayushman-bharat",
		Name:        "Ayushman Bharat Pradhan Mantri Jan Arogya Yojana",
		ShortName:   "AB-PMJAY",
		State:       "National",
		Description: "India's flagship health insurance scheme providing ₹5 lakh coverage per family for secondary and tertiary care hospitalization at empanelled hospitals.",
		Eligibility: "Families identified through SECC 2011 database. Over 50 crore beneficiaries covered.",
		Coverage:    "₹5,00,000 per family per year",
		OfficialURL: "https://pmjay.gov.in",
		IsNational:  true,
	},
	{
		ID:          "bhamashah-swasthya-bima",
		Name:        "Bhamashah Swasthya Bima Yojana",
		ShortName:   "BSBY",
		State:       "Rajasthan",
		Description: "Rajasthan's state health insurance scheme providing cashless treatment at empanelled hospitals for BPL and eligible families.",
		Eligibility: "BPL families, state government employees, and eligible categories registered with Bhamashah card.",
		Coverage:    "₹3,00,000 per family per year (general) + ₹3,00,000 for critical illnesses",
		OfficialURL: "https://health.rajasthan.gov.in",
	},
	{
		ID:          "chiranjeevi",
		Name:        "Mukhyamantri Chiranjeevi Swasthya Bima Yojana",
		ShortName:   "Chiranjeevi",
		State:       "Rajasthan",
		Description: "Comprehensive health insurance for all families in Rajasthan with cashless treatment up to ₹25 lakh annually.",
		Eligibility: "All families in Rajasthan. Registration through Jan Aadhaar or SSO portal.",
		Coverage:    "₹25,00,000 per family per year",
		OfficialURL: "https://chiranjeevi.rajasthan.gov.in",
	},
	{
		ID:          "delhi-arogya-kosh",
		Name:        "Delhi Arogya Kosh",
		ShortName:   "DAK",
		State:       "Delhi",
		Description: "Financial assistance for treatment of serious illnesses for Delhi residents at empanelled hospitals.",
		Eligibility: "Delhi residents with income less than ₹3 lakh per annum for diseases not covered under other schemes.",
		Coverage:    "Up to ₹5,00,000 per case",
		OfficialURL: "https://health.delhi.gov.in",
	},
	{
		ID:          "delhi-arogya-nidhi",
		Name:        "Delhi Arogya Nidhi",
		ShortName:   "DAN",
		State:       "Delhi",
		Description: "Medical treatment assistance for BPL patients at government hospitals in Delhi.",
		Eligibility: "BPL families in Delhi for treatment at government hospitals.",
		Coverage:    "Variable based on treatment requirements",
		OfficialURL: "https://health.delhi.gov.in",
	},
	{
		ID:          "aarogyasri",
		Name:        "Dr. YSR Aarogyasri Health Care Trust",
		ShortName:   "Aarogyasri",
		State:       "Telangana",
		Description: "Telangana's flagship health scheme covering over 2,000 procedures including surgeries, therapies, and critical care.",
		Eligibility: "White ration card holders in Telangana (annual income below ₹5 lakh).",
		Coverage:    "₹5,00,000 per family per year + additional ₹5,00,000 for critical care",
		OfficialURL: "https://www.aarogyasri.telangana.gov.in",
	},
	{
		ID:          "ap-aarogyasri",
		Name:        "YSR Aarogyasri",
		ShortName:   "YSR Aarogyasri",
		State:       "Andhra Pradesh",
		Description: "Comprehensive health coverage for families in Andhra Pradesh covering 2,434 medical procedures.",
		Eligibility: "White ration card holders in Andhra Pradesh.",
		Coverage:    "₹5,00,000 per family per year",
		OfficialURL: "https://aarogyasri.ap.gov.in",
	},
	{
		ID:          "mahatma-phule-jan-arogya",
		Name:        "Mahatma Jyotiba Phule Jan Arogya Yojana",
		ShortName:   "MJPJAY",
		State:       "Maharashtra",
		Description: "Maharashtra's health insurance scheme covering surgeries and therapies for BPL and eligible families.",
		Eligibility: "Yellow and orange ration card holders, farmers with Aadhaar-linked bank accounts.",
		Coverage:    "₹1,50,000 per family per year (₹2,50,000 for kidney transplant)",
		OfficialURL: "https://www.jeevandayee.gov.in",
	},
	{
		ID:          "cm-health-insurance-tn",
		Name:        "Chief Minister's Comprehensive Health Insurance Scheme",
		ShortName:   "CMCHIS",
		State:       "Tamil Nadu",
		Description: "Universal health coverage for Tamil Nadu residents covering 1,027 procedures at network hospitals.",
		Eligibility: "All families in Tamil Nadu with annual income below ₹1.2 lakh.",
		Coverage:    "₹5,00,000 per family per year",
		OfficialURL: "https://www.cmchistn.com",
	},
	{
		ID:          "arogya-karnataka",
		Name:        "Arogya Karnataka",
		ShortName:   "Arogya Karnataka",
		State:       "Karnataka",
		Description: "Free outpatient and inpatient care for BPL families at government and empanelled private hospitals.",
		Eligibility: "BPL card holders and Antyodaya Anna Yojana families.",
		Coverage:    "₹1,50,000 per family per year (primary + secondary care)",
		OfficialURL: "https://karunadu.karnataka.gov.in",
	},
	{
		ID:          "yeshasvini",
		Name:        "Yeshasvini Cooperative Farmers Health Care Scheme",
		ShortName:   "Yeshasvini",
		State:       "Karnataka",
		Description: "Self-funded health scheme for cooperative society members covering surgeries and treatments.",
		Eligibility: "Members of cooperative societies in Karnataka.",
		Coverage:    "Up to ₹2,50,000 per member per year for surgeries",
		OfficialURL: "https://yeshasvini.karnataka.gov.in",
	},
	{
		ID:          "mukhyamantri-amrutum",
		Name:        "Mukhyamantri Amrutum Yojana",
		ShortName:   "MAY",
		State:       "Gujarat",
		Description: "Health insurance for BPL families in Gujarat covering critical illnesses and surgeries.",
		Eligibility: "BPL families with annual income below ₹4 lakh (rural) or ₹4.50 lakh (urban).",
		Coverage:    "₹5,00,000 per family per year",
		OfficialURL: "https://magujarat.com",
	},
	{
		ID:          "kasp",
		Name:        "Karunya Arogya Suraksha Padhathi",
		ShortName:   "KASP",
		State:       "Kerala",
		Description: "Kerala's comprehensive health scheme providing cashless treatment at empanelled hospitals.",
		Eligibility: "Families with annual income below ₹3 lakh.",
		Coverage:    "₹5,00,000 per family per year",
		OfficialURL: "https://sha.kerala.gov.in",
	},
	{
		ID:          "swasthya-sathi",
		Name:        "Swasthya Sathi",
		ShortName:   "Swasthya Sathi",
		State:       "West Bengal",
		Description: "Universal health coverage for West Bengal families with smart card-based cashless treatment.",
		Eligibility: "All families in West Bengal (female head of family as primary beneficiary).",
		Coverage:    "₹5,00,000 per family per year",
		OfficialURL: "https://swasthyasathi.gov.in",
	},
	{
		ID:          "biju-swasthya-kalyan",
		Name:        "Biju Swasthya Kalyan Yojana",
		ShortName:   "BSKY",
		State:       "Odisha",
		Description: "Health assurance providing free treatment at government and empanelled private hospitals.",
		Eligibility: "All families covered under National/State Food Security, NFSA/SFSS beneficiaries.",
		Coverage:    "₹5,00,000 per family + ₹10,00,000 for women members per year",
		OfficialURL: "https://bsky.odisha.gov.in",
	},
	{
		ID:          "sarbat-sehat-bima",
		Name:        "Sarbat Sehat Bima Yojana",
		ShortName:   "SSBY",
		State:       "Punjab",
		Description: "Comprehensive health insurance covering secondary and tertiary care for Punjab residents.",
		Eligibility: "SECC 2011 beneficiaries + all ration card holder families.",
		Coverage:    "₹5,00,000 per family per year",
		OfficialURL: "https://sha.punjab.gov.in",
	},
	{
		ID:          "ayushman-bharat-mp",
		Name:        "Ayushman Bharat Niramayam",
		ShortName:   "AB Niramayam",
		State:       "Madhya Pradesh",
		Description: "Integrated with AB-PMJAY, extending coverage to additional beneficiaries in MP.",
		Eligibility: "SECC families + state-added categories including Samagra Samajik Suraksha beneficiaries.",
		Coverage:    "₹5,00,000 per family per year",
		OfficialURL: "https://health.mp.gov.in",
	},
	{
		ID:          "ayushman-bharat-up",
		Name:        "Ayushman Bharat - UP",
		ShortName:   "AB-UP",
		State:       "Uttar Pradesh",
		Description: "Extension of AB-PMJAY with additional state beneficiaries for comprehensive coverage.",
		Eligibility: "SECC beneficiaries + workers in unorganized sector registered with e-shram portal.",
		Coverage:    "₹5,00,000 per family per year",
		OfficialURL: "https://health.up.gov.in",
	},
	{
		ID:          "khubchand-baghel",
		Name:        "Dr. Khubchand Baghel Swasthya Sahayata Yojana",
		ShortName:   "KBSSY",
		State:       "Chhattisgarh",
		Description: "Universal health coverage for all Chhattisgarh residents with cashless treatment facilities.",
		Eligibility: "All families of Chhattisgarh with ration cards.",
		Coverage:    "₹5,00,000 per family per year",
		OfficialURL: "https://dkbssy.cg.nic.in",
	},
	{
		ID:          "mukhyamantri-jan-arogya",
		Name:        "Mukhyamantri Jan Arogya Yojana",
		ShortName:   "MJAY",
		State:       "Jharkhand",
		Description: "Comprehensive health scheme extending AB-PMJAY to additional beneficiaries in Jharkhand.",
		Eligibility: "All ration card holder families in Jharkhand.",
		Coverage:    "₹5,00,000 per family per year",
		OfficialURL: "https://jksha.gov.in",
	},
	{
		ID:          "mukhyamantri-swasthya-bima",
		Name:        "Mukhyamantri Swasthya Bima Yojana",
		ShortName:   "MSBY",
		State:       "Bihar",
		Description: "State health insurance integrated with AB-PMJAY for Bihar residents.",
		Eligibility: "SECC beneficiaries and state-added categories.",
		Coverage:    "₹5,00,000 per family per year",
		OfficialURL: "https://statehealthinsurance.bihar.gov.in",
	},
	{
		ID:          "atal-amrit-abhiyan",
		Name:        "Atal Amrit Abhiyan",
		ShortName:   "AAA",
		State:       "Assam",
		Description: "Health assurance scheme covering selected diseases for economically weaker sections.",
		Eligibility: "Families with annual income below ₹5 lakh.",
		Coverage:    "₹2,00,000 per family per year",
		OfficialURL: "https://aaaofficer.assam.gov.in",
	},
	{
		ID:          "himcare",
		Name:        "HIMCARE",
		ShortName:   "HIMCARE",
		State:       "Himachal Pradesh",
		Description: "Universal health coverage for HP residents not covered under AB-PMJAY.",
		Eligibility: "All residents of Himachal Pradesh (non-PMJAY beneficiaries need to register).",
		Coverage:    "₹5,00,000 per family per year",
		OfficialURL: "https://hpsbys.in",
	},
	{
		ID:          "atal-ayushman",
		Name:        "Atal Ayushman Uttarakhand Yojana",
		ShortName:   "AAUY",
		State:       "Uttarakhand",
		Description: "Universal health coverage extending AB-PMJAY benefits to all Uttarakhand residents.",
		Eligibility: "All families with ration cards in Uttarakhand.",
		Coverage:    "₹5,00,000 per family per year",
		OfficialURL: "https://ayushmanuttarakhand.org",
	},
	{
		ID:          "deen-dayal-swasthya-seva",
		Name:        "Deen Dayal Swasthya Seva Yojana",
		ShortName:   "DDSSY",
		State:       "Goa",
		Description: "Health insurance for all Goa residents providing cashless treatment at network hospitals.",
		Eligibility: "All residents of Goa with valid identity proof.",
		Coverage:    "₹4,00,000 per family per year",
		OfficialURL: "https://www.ddssy.goa.gov.in",
	},
}

// cityStates maps major cities to the state whose schemes apply there
var cityStates = map[string]string{
	"jaipur":             "Rajasthan",
	"jodhpur":            "Rajasthan",
	"udaipur":            "Rajasthan",
	"kota":               "Rajasthan",
	"ajmer":              "Rajasthan",
	"bikaner":            "Rajasthan",
	"delhi":              "Delhi",
	"new delhi":          "Delhi",
	"noida":              "Uttar Pradesh",
	"gurgaon":            "Haryana",
	"gurugram":           "Haryana",
	"faridabad":          "Haryana",
	"ghaziabad":          "Uttar Pradesh",
	"hyderabad":          "Telangana",
	"secunderabad":       "Telangana",
	"warangal":           "Telangana",
	"visakhapatnam":      "Andhra Pradesh",
	"vijayawada":         "Andhra Pradesh",
	"guntur":             "Andhra Pradesh",
	"tirupati":           "Andhra Pradesh",
	"mumbai":             "Maharashtra",
	"pune":               "Maharashtra",
	"nagpur":             "Maharashtra",
	"nashik":             "Maharashtra",
	"thane":              "Maharashtra",
	"aurangabad":         "Maharashtra",
	"chennai":            "Tamil Nadu",
	"coimbatore":         "Tamil Nadu",
	"madurai":            "Tamil Nadu",
	"salem":              "Tamil Nadu",
	"tiruchirappalli":    "Tamil Nadu",
	"bangalore":          "Karnataka",
	"bengaluru":          "Karnataka",
	"mysore":             "Karnataka",
	"mysuru":             "Karnataka",
	"mangalore":          "Karnataka",
	"hubli":              "Karnataka",
	"ahmedabad":          "Gujarat",
	"surat":              "Gujarat",
	"vadodara":           "Gujarat",
	"rajkot":             "Gujarat",
	"kochi":              "Kerala",
	"cochin":             "Kerala",
	"thiruvananthapuram": "Kerala",
	"kozhikode":          "Kerala",
	"thrissur":           "Kerala",
	"kolkata":            "West Bengal",
	"howrah":             "West Bengal",
	"durgapur":           "West Bengal",
	"siliguri":           "West Bengal",
	"bhubaneswar":        "Odisha",
	"cuttack":            "Odisha",
	"rourkela":           "Odisha",
	"chandigarh":         "Punjab",
	"ludhiana":           "Punjab",
	"amritsar":           "Punjab",
	"jalandhar":          "Punjab",
	"bhopal":             "Madhya Pradesh",
	"indore":             "Madhya Pradesh",
	"jabalpur":           "Madhya Pradesh",
	"gwalior":            "Madhya Pradesh",
	"lucknow":            "Uttar Pradesh",
	"kanpur":             "Uttar Pradesh",
	"agra":               "Uttar Pradesh",
	"varanasi":           "Uttar Pradesh",
	"prayagraj":          "Uttar Pradesh",
	"allahabad":          "Uttar Pradesh",
	"patna":              "Bihar",
	"gaya":               "Bihar",
	"muzaffarpur":        "Bihar",
	"ranchi":             "Jharkhand",
	"jamshedpur":         "Jharkhand",
	"dhanbad":            "Jharkhand",
	"raipur":             "Chhattisgarh",
	"bhilai":             "Chhattisgarh",
	"guwahati":           "Assam",
	"dibrugarh":          "Assam",
	"shimla":             "Himachal Pradesh",
	"manali":             "Himachal Pradesh",
	"dharamshala":        "Himachal Pradesh",
	"dehradun":           "Uttarakhand",
	"haridwar":           "Uttarakhand",
	"rishikesh":          "Uttarakhand",
	"panaji":             "Goa",
	"margao":             "Goa",
	"vasco":              "Goa",
	"karnal":             "Haryana",
	"panipat":            "Haryana",
	"rohtak":             "Haryana",
	"hisar":              "Haryana",
	"ambala":             "Haryana",
}
