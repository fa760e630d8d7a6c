package checklist

// Dictionary is a named checklist that can be scanned against a conversation.
type Dictionary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Dictionary IDs.
const (
	DictionaryCNA              = "cna"
	DictionaryPhoneUp          = "phone-up"
	DictionaryTradeAppraisal   = "trade-appraisal"
	DictionaryVehicleSelection = "vehicle-selection"
)

// CNA categories.
const (
	CategoryOpening   Category = "opening"
	CategoryDiscovery Category = "discovery"
	CategoryFit       Category = "fit"
	CategoryWrapUp    Category = "wrap-up"
)

// Phone-up categories.
const (
	CategoryGreeting     Category = "greeting"
	CategoryAvailability Category = "availability"
	CategoryValue        Category = "value"
	CategoryAppointment  Category = "appointment"
	CategoryContactInfo  Category = "contact-info"
	CategoryClose        Category = "close"
)

// Trade-appraisal categories.
const (
	CategoryVehicleBasics Category = "vehicle-basics"
	CategoryHistory       Category = "history"
	CategoryValuation     Category = "valuation"
	CategoryNextSteps     Category = "next-steps"
)

// Vehicle-selection categories.
const (
	CategoryNeedsMatch   Category = "needs-match"
	CategoryPresentation Category = "presentation"
	CategoryDemoDrive    Category = "demo-drive"
	CategoryCommitment   Category = "commitment"
)

// CNA is the Customer Needs Analysis checklist covering the structured
// discovery conversation a salesperson is trained to conduct.
var CNA = Dictionary{
	ID:   DictionaryCNA,
	Name: "Customer Needs Analysis",
	Items: []Item{
		{
			ID:          "cna-greeting",
			Label:       "Warm greeting",
			Description: "Welcome the customer and introduce yourself by name.",
			Category:    CategoryOpening,
			Keywords:    []string{"welcome to", "my name is", "good morning", "good afternoon"},
		},
		{
			ID:          "cna-purpose",
			Label:       "Purpose of visit",
			Description: "Ask what brought the customer in today.",
			Category:    CategoryOpening,
			Keywords:    []string{"what brings you", "looking for today", "how can i help"},
		},
		{
			ID:          "cna-driver",
			Label:       "Who is the vehicle for",
			Description: "Find out who will be the primary driver.",
			Category:    CategoryDiscovery,
			Keywords:    []string{"who will be driving", "for yourself", "primary driver"},
		},
		{
			ID:          "cna-current-vehicle",
			Label:       "Current vehicle",
			Description: "Ask what the customer is driving now.",
			Category:    CategoryDiscovery,
			Keywords:    []string{"currently driving", "driving now", "current car", "current vehicle"},
		},
		{
			ID:          "cna-trade",
			Label:       "Trade-in",
			Description: "Ask whether the customer has a vehicle to trade.",
			Category:    CategoryDiscovery,
			Keywords:    []string{"trade"},
		},
		{
			ID:          "cna-usage",
			Label:       "Usage and lifestyle",
			Description: "Learn how the vehicle will be used day to day.",
			Category:    CategoryDiscovery,
			Keywords:    []string{"commute", "daily driv", "use it for", "road trip", "towing"},
		},
		{
			ID:          "cna-passengers",
			Label:       "Passengers",
			Description: "Ask who rides along: family, kids, car seats.",
			Category:    CategoryDiscovery,
			Keywords:    []string{"how many people", "passengers", "kids", "car seat", "family"},
		},
		{
			ID:          "cna-features",
			Label:       "Must-have features",
			Description: "Identify the features the customer cannot live without.",
			Category:    CategoryFit,
			Keywords:    []string{"must-have", "must have", "important to you", "features"},
		},
		{
			ID:          "cna-budget",
			Label:       "Budget",
			Description: "Discuss budget, payment, or price range comfort.",
			Category:    CategoryFit,
			Keywords:    []string{"budget", "monthly payment", "price range", "down payment"},
		},
		{
			ID:          "cna-timeline",
			Label:       "Timeline",
			Description: "Find out how soon the customer wants to buy.",
			Category:    CategoryFit,
			Keywords:    []string{"how soon", "timeline", "when would you like", "time frame"},
		},
		{
			ID:          "cna-summary",
			Label:       "Summarize and confirm",
			Description: "Play back what you heard and confirm it is right.",
			Category:    CategoryWrapUp,
			Keywords:    []string{"to summarize", "what i'm hearing", "did i get that right", "let me make sure"},
		},
	},
}

// PhoneUp is the inbound phone call checklist. The goal of a phone-up is an
// appointment, not a sale over the phone.
var PhoneUp = Dictionary{
	ID:   DictionaryPhoneUp,
	Name: "Phone-Up",
	Items: []Item{
		{
			ID:          "phone-dealership-greeting",
			Label:       "Dealership greeting",
			Description: "Answer with a thank-you and the dealership name.",
			Category:    CategoryGreeting,
			Keywords:    []string{"thank you for calling", "thanks for calling"},
		},
		{
			ID:          "phone-own-name",
			Label:       "Give your name",
			Description: "Introduce yourself by name.",
			Category:    CategoryGreeting,
			Keywords:    []string{"my name is", "this is"},
		},
		{
			ID:          "phone-caller-name",
			Label:       "Ask the caller's name",
			Description: "Get the caller's name early and use it.",
			Category:    CategoryGreeting,
			Keywords:    []string{"may i ask your name", "who do i have the pleasure", "your name"},
		},
		{
			ID:          "phone-vehicle-interest",
			Label:       "Vehicle of interest",
			Description: "Identify which vehicle the caller is asking about.",
			Category:    CategoryDiscovery,
			Keywords:    []string{"calling about", "which vehicle", "interested in"},
		},
		{
			ID:          "phone-trade",
			Label:       "Ask about a trade",
			Description: "Ask whether the caller has a vehicle to trade.",
			Category:    CategoryDiscovery,
			Keywords:    []string{"trade"},
		},
		{
			ID:          "phone-timeline",
			Label:       "Ask about timing",
			Description: "Find out how soon the caller is looking to buy.",
			Category:    CategoryDiscovery,
			Keywords:    []string{"how soon", "when are you looking", "time frame"},
		},
		{
			ID:          "phone-availability",
			Label:       "Confirm availability",
			Description: "Confirm the vehicle is still available before inviting the caller in.",
			Category:    CategoryAvailability,
			Keywords:    []string{"still available", "in stock", "on the lot"},
		},
		{
			ID:          "phone-alternatives",
			Label:       "Offer alternatives",
			Description: "Mention similar vehicles in case the first choice is gone.",
			Category:    CategoryAvailability,
			Keywords:    []string{"similar", "other options", "we also have"},
		},
		{
			ID:          "phone-value-statement",
			Label:       "Value statement",
			Description: "Say something positive and specific about the vehicle.",
			Category:    CategoryValue,
			Keywords:    []string{"great choice", "popular", "one owner", "certified", "low miles"},
		},
		{
			ID:          "phone-incentives",
			Label:       "Mention current offers",
			Description: "Bring up specials, rebates, or financing offers.",
			Category:    CategoryValue,
			Keywords:    []string{"special", "rebate", "offer", "financing"},
		},
		{
			ID:          "phone-ask-appointment",
			Label:       "Ask for the appointment",
			Description: "Invite the caller to come in and see the vehicle.",
			Category:    CategoryAppointment,
			Keywords:    []string{"come in", "stop by", "appointment", "come see"},
		},
		{
			ID:          "phone-alternate-choice",
			Label:       "Alternate-choice close",
			Description: "Offer two concrete times rather than an open question.",
			Category:    CategoryAppointment,
			Keywords:    []string{"morning or afternoon", "today or tomorrow", "or would"},
		},
		{
			ID:          "phone-urgency",
			Label:       "Create urgency",
			Description: "Let the caller know desirable vehicles move fast.",
			Category:    CategoryAppointment,
			Keywords:    []string{"won't last", "going fast", "lots of interest", "hold the vehicle"},
		},
		{
			ID:          "phone-confirm-time",
			Label:       "Confirm the time",
			Description: "Repeat the agreed day and time back to the caller.",
			Category:    CategoryAppointment,
			Keywords:    []string{"see you at", "we'll have it ready", "confirm"},
		},
		{
			ID:          "phone-number",
			Label:       "Get a phone number",
			Description: "Ask for the best number to reach the caller.",
			Category:    CategoryContactInfo,
			Keywords:    []string{"best number", "phone number", "call you back"},
		},
		{
			ID:          "phone-email",
			Label:       "Get an email address",
			Description: "Ask for an email to send vehicle details.",
			Category:    CategoryContactInfo,
			Keywords:    []string{"email"},
		},
		{
			// Manual-only: graded by a trainer listening to the call.
			ID:          "phone-repeat-back",
			Label:       "Repeat contact info back",
			Description: "Read the caller's contact details back to verify them.",
			Category:    CategoryContactInfo,
			Keywords:    []string{},
		},
		{
			ID:          "phone-recap",
			Label:       "Recap the call",
			Description: "Summarize the vehicle, the time, and what happens next.",
			Category:    CategoryClose,
			Keywords:    []string{"to recap", "just to confirm", "so we'll see you"},
		},
		{
			ID:          "phone-thanks",
			Label:       "Thank the caller",
			Description: "End the call with a thank-you.",
			Category:    CategoryClose,
			Keywords:    []string{"thank you for calling", "thanks for calling", "appreciate your call"},
		},
	},
}

// TradeAppraisal is the trade walk checklist. ACV means Actual Cash Value.
var TradeAppraisal = Dictionary{
	ID:   DictionaryTradeAppraisal,
	Name: "Trade Appraisal",
	Items: []Item{
		{
			ID:          "trade-year-make-model",
			Label:       "Year, make, and model",
			Description: "Establish exactly what the customer is trading.",
			Category:    CategoryVehicleBasics,
			Keywords:    []string{"what year", "make and model", "year, make"},
		},
		{
			ID:          "trade-mileage",
			Label:       "Mileage",
			Description: "Ask how many miles are on the vehicle.",
			Category:    CategoryVehicleBasics,
			Keywords:    []string{"miles", "mileage"},
		},
		{
			ID:          "trade-ownership",
			Label:       "Ownership",
			Description: "How long owned, original owner, title in hand.",
			Category:    CategoryVehicleBasics,
			Keywords:    []string{"how long have you owned", "original owner", "title"},
		},
		{
			ID:          "trade-payoff",
			Label:       "Payoff",
			Description: "Ask whether anything is still owed on the vehicle.",
			Category:    CategoryVehicleBasics,
			Keywords:    []string{"payoff", "still owe", "loan balance", "paid off"},
		},
		{
			ID:          "trade-condition",
			Label:       "Overall condition",
			Description: "Ask the customer to describe the vehicle's condition.",
			Category:    CategoryVehicleBasics,
			Keywords:    []string{"condition"},
		},
		{
			ID:          "trade-accidents",
			Label:       "Accident history",
			Description: "Ask about accidents or body work.",
			Category:    CategoryHistory,
			Keywords:    []string{"accident", "collision", "body work"},
		},
		{
			ID:          "trade-service",
			Label:       "Service history",
			Description: "Ask about maintenance records and servicing.",
			Category:    CategoryHistory,
			Keywords:    []string{"service records", "maintained", "oil change", "service history"},
		},
		{
			ID:          "trade-smoker-pets",
			Label:       "Smoking and pets",
			Description: "Interior factors that affect reconditioning cost.",
			Category:    CategoryHistory,
			Keywords:    []string{"smoke", "smoked in", "pets"},
		},
		{
			ID:          "trade-modifications",
			Label:       "Modifications",
			Description: "Ask about aftermarket parts or modifications.",
			Category:    CategoryHistory,
			Keywords:    []string{"aftermarket", "modification", "modified"},
		},
		{
			ID:          "trade-acv",
			Label:       "Explain ACV",
			Description: "Explain that the appraisal reflects actual cash value.",
			Category:    CategoryValuation,
			Keywords:    []string{"actual cash value", "acv"},
		},
		{
			ID:          "trade-market-data",
			Label:       "Reference market data",
			Description: "Ground the number in auction and market comparables.",
			Category:    CategoryValuation,
			Keywords:    []string{"market", "auction", "book value", "comparable"},
		},
		{
			ID:          "trade-range",
			Label:       "Give a range, not a number",
			Description: "Avoid committing to a figure before the inspection.",
			Category:    CategoryValuation,
			Keywords:    []string{"range", "depends on", "once we've looked"},
		},
		{
			ID:          "trade-manager",
			Label:       "Manager appraisal",
			Description: "Set up the used-car manager's appraisal.",
			Category:    CategoryValuation,
			Keywords:    []string{"appraisal", "used car manager", "have our manager"},
		},
		{
			ID:          "trade-walk-around",
			Label:       "Walk-around",
			Description: "Invite the customer to walk the vehicle together.",
			Category:    CategoryNextSteps,
			Keywords:    []string{"walk around", "take a look at your"},
		},
		{
			ID:          "trade-keys",
			Label:       "Keys for inspection",
			Description: "Ask for the keys so the vehicle can be inspected.",
			Category:    CategoryNextSteps,
			Keywords:    []string{"keys", "inspect"},
		},
		{
			ID:          "trade-drive",
			Label:       "Drive the trade",
			Description: "Mention that the appraiser will drive the vehicle.",
			Category:    CategoryNextSteps,
			Keywords:    []string{"drive your", "quick drive"},
		},
		{
			ID:          "trade-commitment",
			Label:       "Commitment question",
			Description: "Ask whether the customer would trade today if the numbers work.",
			Category:    CategoryNextSteps,
			Keywords:    []string{"if the numbers", "would you trade", "move forward today"},
		},
	},
}

// VehicleSelection is the vehicle presentation and demo-drive checklist.
var VehicleSelection = Dictionary{
	ID:   DictionaryVehicleSelection,
	Name: "Vehicle Selection",
	Items: []Item{
		{
			ID:          "select-recap-needs",
			Label:       "Recap the customer's needs",
			Description: "Tie the selection back to what the customer said.",
			Category:    CategoryNeedsMatch,
			Keywords:    []string{"based on what you told me", "you mentioned", "you said"},
		},
		{
			ID:          "select-vehicle",
			Label:       "Present a specific vehicle",
			Description: "Commit to one vehicle that fits the needs.",
			Category:    CategoryNeedsMatch,
			Keywords:    []string{"perfect fit", "great match", "i'd like to show you"},
		},
		{
			ID:          "select-alternative",
			Label:       "Have a backup",
			Description: "Mention an alternative in case the first miss.",
			Category:    CategoryNeedsMatch,
			Keywords:    []string{"another option", "also consider", "backup"},
		},
		{
			ID:          "select-feature-benefit",
			Label:       "Feature-benefit selling",
			Description: "Translate features into benefits for this customer.",
			Category:    CategoryPresentation,
			Keywords:    []string{"which means", "so you can", "that means"},
		},
		{
			ID:          "select-safety",
			Label:       "Safety story",
			Description: "Cover the safety equipment that matters to them.",
			Category:    CategoryPresentation,
			Keywords:    []string{"safety", "airbag", "lane keep", "blind spot"},
		},
		{
			ID:          "select-ownership-costs",
			Label:       "Cost of ownership",
			Description: "Fuel economy, warranty, and maintenance costs.",
			Category:    CategoryPresentation,
			Keywords:    []string{"fuel economy", "mpg", "warranty", "maintenance"},
		},
		{
			ID:          "select-invite-drive",
			Label:       "Invite the demo drive",
			Description: "Ask the customer to get behind the wheel.",
			Category:    CategoryDemoDrive,
			Keywords:    []string{"test drive", "drive it", "behind the wheel"},
		},
		{
			ID:          "select-route",
			Label:       "Planned route",
			Description: "Use a route that shows the vehicle off.",
			Category:    CategoryDemoDrive,
			Keywords:    []string{"route", "take a left", "highway on-ramp"},
		},
		{
			ID:          "select-drive-feedback",
			Label:       "Ask for feedback during the drive",
			Description: "Check in on how the vehicle feels.",
			Category:    CategoryDemoDrive,
			Keywords:    []string{"how does it feel", "what do you think so far", "comfortable"},
		},
		{
			ID:          "select-trial-close",
			Label:       "Trial close",
			Description: "Test the water before heading inside.",
			Category:    CategoryCommitment,
			Keywords:    []string{"if we could", "take it home", "is this the one"},
		},
		{
			ID:          "select-next-step",
			Label:       "Move to numbers",
			Description: "Invite the customer inside to work up figures.",
			Category:    CategoryCommitment,
			Keywords:    []string{"go inside", "work up some numbers", "figures"},
		},
	},
}

// Dictionaries lists every built-in dictionary in presentation order.
var Dictionaries = []Dictionary{CNA, PhoneUp, TradeAppraisal, VehicleSelection}

// Lookup returns the dictionary with the given ID.
func Lookup(id string) (Dictionary, bool) {
	for _, d := range Dictionaries {
		if d.ID == id {
			return d, true
		}
	}
	return Dictionary{}, false
}
