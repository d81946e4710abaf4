package dataset

// Expected CSV column names.
const (
	ColUserID                = "User_ID"
	ColAge                   = "Age"
	ColGender                = "Gender"
	ColOccupation            = "Occupation"
	ColCountry               = "Country"
	ColCondition             = "Mental_Health_Condition"
	ColSeverity              = "Severity"
	ColConsultation          = "Consultation_History"
	ColStressLevel           = "Stress_Level"
	ColMedication            = "Medication_Usage"
	ColDietQuality           = "Diet_Quality"
	ColSmokingHabit          = "Smoking_Habit"
	ColAlcoholConsumption    = "Alcohol_Consumption"
	ColSleepHours            = "Sleep_Hours"
	ColWorkHours             = "Work_Hours"
	ColPhysicalActivityHours = "Physical_Activity_Hours"
	ColSocialMediaUsage      = "Social_Media_Usage"
)

// requiredColumns lists every column the graph builder consumes.
var requiredColumns = []string{
	ColUserID,
	ColAge,
	ColGender,
	ColOccupation,
	ColCountry,
	ColCondition,
	ColSeverity,
	ColConsultation,
	ColStressLevel,
	ColMedication,
	ColDietQuality,
	ColSmokingHabit,
	ColAlcoholConsumption,
	ColSleepHours,
	ColWorkHours,
	ColPhysicalActivityHours,
	ColSocialMediaUsage,
}

// Record is one survey row with all cells coerced to their declared types.
type Record struct {
	UserID                int
	Age                   int
	Gender                string
	Occupation            string
	Country               string
	Condition             string
	Severity              string
	Consultation          string
	StressLevel           string
	Medication            string
	DietQuality           string
	SmokingHabit          string
	AlcoholConsumption    string
	SleepHours            float64
	WorkHours             int
	PhysicalActivityHours int
	SocialMediaUsage      float64
}
