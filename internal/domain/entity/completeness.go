package entity

// ProfileSnapshot - все разделы профиля кандидата на момент чтения.
type ProfileSnapshot struct {
	Profile         *Profile
	AcademicRecords []AcademicRecord
	Experiences     []WorkExperience
	Availability    *WeeklyAvailability
	Selection       *CourseSelection
}

// Completeness - предикаты заполненности по разделам.
type Completeness struct {
	PersonalData bool
	Academic     bool
	Experience   bool
	Availability bool
}

// IsProfileComplete - чистая конъюнкция разделов.
func (c Completeness) IsProfileComplete() bool {
	return c.PersonalData && c.Academic && c.Experience && c.Availability
}

// MissingSections перечисляет незаполненные разделы.
func (c Completeness) MissingSections() []string {
	var missing []string
	if !c.PersonalData {
		missing = append(missing, "personal_data")
	}
	if !c.Academic {
		missing = append(missing, "academic")
	}
	if !c.Experience {
		missing = append(missing, "experience")
	}
	if !c.Availability {
		missing = append(missing, "availability")
	}
	return missing
}

func (s ProfileSnapshot) Completeness() Completeness {
	return Completeness{
		PersonalData: s.Profile.IsPersonalDataComplete(),
		Academic:     IsAcademicComplete(s.AcademicRecords),
		Experience:   IsExperienceComplete(s.Experiences),
		Availability: s.Availability.HasCompleteDay() && s.Selection.Len() > 0,
	}
}
