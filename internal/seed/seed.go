package seed

import "github.com/careloop/advocates-api/internal/models"

// Advocates returns the fixed dataset loaded by the seed endpoint. The
// slice is rebuilt on every call so callers may mutate their copy.
func Advocates() []models.Advocate {
	return []models.Advocate{
		{FirstName: "John", LastName: "Doe", City: "New York", Degree: "MD", Specialties: models.SpecialtyList{"Bipolar", "LGBTQ", "Medication/Prescribing"}, YearsOfExperience: 10, PhoneNumber: 5551234567},
		{FirstName: "Jane", LastName: "Smith", City: "Los Angeles", Degree: "PhD", Specialties: models.SpecialtyList{"LGBTQ", "General Mental Health", "Relationship Issues"}, YearsOfExperience: 8, PhoneNumber: 5559876543},
		{FirstName: "Alice", LastName: "Johnson", City: "Chicago", Degree: "MSW", Specialties: models.SpecialtyList{"Trauma & PTSD", "Personality disorders"}, YearsOfExperience: 5, PhoneNumber: 5554567890},
		{FirstName: "Michael", LastName: "Brown", City: "Houston", Degree: "MD", Specialties: models.SpecialtyList{"Substance use/abuse", "Pediatrics"}, YearsOfExperience: 12, PhoneNumber: 5556543210},
		{FirstName: "Emily", LastName: "Davis", City: "Phoenix", Degree: "PhD", Specialties: models.SpecialtyList{"Women's issues", "Eating disorders"}, YearsOfExperience: 7, PhoneNumber: 5553210987},
		{FirstName: "Chris", LastName: "Martinez", City: "Philadelphia", Degree: "MSW", Specialties: models.SpecialtyList{"Chronic pain", "Weight loss & nutrition"}, YearsOfExperience: 9, PhoneNumber: 5557890123},
		{FirstName: "Jessica", LastName: "Taylor", City: "San Antonio", Degree: "MD", Specialties: models.SpecialtyList{"Coaching (leadership, career, academic and wellness)"}, YearsOfExperience: 11, PhoneNumber: 5554561234},
		{FirstName: "David", LastName: "Harris", City: "San Diego", Degree: "PhD", Specialties: models.SpecialtyList{"Obsessive-compulsive disorders", "Neuropsychological evaluations & testing (ADHD testing)"}, YearsOfExperience: 6, PhoneNumber: 5557896543},
		{FirstName: "Laura", LastName: "Clark", City: "Dallas", Degree: "MSW", Specialties: models.SpecialtyList{"Attention and Hyperactivity (ADHD)", "Sleep issues"}, YearsOfExperience: 4, PhoneNumber: 5550123456},
		{FirstName: "Daniel", LastName: "Lewis", City: "San Jose", Degree: "MD", Specialties: models.SpecialtyList{"Schizophrenia and psychotic disorders", "Learning disorders"}, YearsOfExperience: 13, PhoneNumber: 5553217654},
		{FirstName: "Sarah", LastName: "Lee", City: "Austin", Degree: "PhD", Specialties: models.SpecialtyList{"Domestic abuse", "Anxiety", "Depression"}, YearsOfExperience: 10, PhoneNumber: 5551238765},
		{FirstName: "James", LastName: "King", City: "Jacksonville", Degree: "MSW", Specialties: models.SpecialtyList{"Men's issues", "Relationship Issues"}, YearsOfExperience: 14, PhoneNumber: 5556540987},
		{FirstName: "Megan", LastName: "Green", City: "Fort Worth", Degree: "MD", Specialties: models.SpecialtyList{"Suicide History/Attempts", "General Mental Health"}, YearsOfExperience: 9, PhoneNumber: 5557891234},
		{FirstName: "Joshua", LastName: "Walker", City: "Columbus", Degree: "PhD", Specialties: models.SpecialtyList{"Personal growth", "Life coaching"}, YearsOfExperience: 3, PhoneNumber: 5554560987},
		{FirstName: "Priya", LastName: "Desai", City: "Denver", Degree: "MD", Specialties: models.SpecialtyList{"Bipolar", "Anxiety"}, YearsOfExperience: 12, PhoneNumber: 5559873456},
	}
}
