package application

import (
	"math"
	"strings"
	"time"

	"github.com/codepioneers/recruiting/internal/models"
)

// Profile is the slice of applicant data the score is computed from
type Profile struct {
	Experiences   []models.WorkExperience
	Educations    []models.Education
	Skills        []models.Skill
	EnglishLevels []models.ApplicantEnglishLevel
}

// ComputeScore rates how well the applicant fits the posting. Every component
// is a percentage; the general score is their rounded mean. The score is
// computed once at apply time and stored with the application.
func ComputeScore(posting models.JobPosting, profile Profile, now time.Time) models.Score {
	score := models.Score{
		English:              englishScore(posting.RequiredEnglishLevel, profile.EnglishLevels),
		Skills:               skillsScore(posting.SkillList(), profile.Skills),
		Education:            educationScore(profile.Educations),
		ExperienceYears:      experienceYearsScore(posting.RequiredExperienceYears, profile.Experiences, now),
		ExperienceSimilarity: experienceSimilarityScore(posting.JobTitle, profile.Experiences),
	}
	sum := score.English + score.Skills + score.Education + score.ExperienceYears + score.ExperienceSimilarity
	score.General = int(math.Round(float64(sum) / 5))
	return score
}

// englishScore deducts 20 points per CEFR step the applicant is below the
// required level
func englishScore(required models.EnglishLevel, levels []models.ApplicantEnglishLevel) int {
	requiredIdx := required.Index()
	if requiredIdx < 0 {
		return 100
	}

	best := -1
	for _, l := range levels {
		if idx := l.Level.Index(); idx > best {
			best = idx
		}
	}

	deficit := requiredIdx - best
	if deficit <= 0 {
		return 100
	}
	if score := 100 - 20*deficit; score > 0 {
		return score
	}
	return 0
}

// skillsScore is the share of required skills the applicant lists,
// case insensitive
func skillsScore(required []string, skills []models.Skill) int {
	if len(required) == 0 {
		return 100
	}

	have := make(map[string]bool, len(skills))
	for _, s := range skills {
		have[strings.ToLower(strings.TrimSpace(s.SkillName))] = true
	}

	matched := 0
	for _, r := range required {
		if have[strings.ToLower(r)] {
			matched++
		}
	}

	return int(math.Round(100 * float64(matched) / float64(len(required))))
}

var educationLevelScores = map[models.EducationLevel]int{
	models.EducationHighSchool: 40,
	models.EducationAssociate:  55,
	models.EducationBachelor:   70,
	models.EducationMaster:     85,
	models.EducationPhD:        100,
}

// educationScore rates the highest education level on record
func educationScore(edus []models.Education) int {
	best := 0
	bestRank := 0
	for _, e := range edus {
		if rank := e.EducationLevel.Rank(); rank > bestRank {
			bestRank = rank
			best = educationLevelScores[e.EducationLevel]
		}
	}
	return best
}

// experienceYearsScore compares total experience against the required years
func experienceYearsScore(requiredYears int, exps []models.WorkExperience, now time.Time) int {
	if requiredYears <= 0 {
		return 100
	}

	var total float64
	for _, e := range exps {
		total += e.Years(now)
	}

	score := int(math.Round(100 * total / float64(requiredYears)))
	if score > 100 {
		return 100
	}
	return score
}

// experienceSimilarityScore is the best word overlap between the posting
// title and any past job title
func experienceSimilarityScore(postingTitle string, exps []models.WorkExperience) int {
	postingWords := strings.Fields(strings.ToLower(postingTitle))
	if len(postingWords) == 0 {
		return 0
	}

	best := 0.0
	for _, e := range exps {
		expWords := make(map[string]bool)
		for _, w := range strings.Fields(strings.ToLower(e.JobTitle)) {
			expWords[w] = true
		}

		matched := 0
		for _, w := range postingWords {
			if expWords[w] {
				matched++
			}
		}

		if ratio := float64(matched) / float64(len(postingWords)); ratio > best {
			best = ratio
		}
	}

	return int(math.Round(100 * best))
}
