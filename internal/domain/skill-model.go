package domain

// Skill is a value of the closed technology vocabulary.
type Skill string

const (
	SkillC           Skill = "C"
	SkillCPP         Skill = "C++"
	SkillPython      Skill = "Python"
	SkillJavaScript  Skill = "JavaScript"
	SkillTypeScript  Skill = "TypeScript"
	SkillNodeJS      Skill = "NodeJS"
	SkillReactJS     Skill = "ReactJS"
	SkillNextJS      Skill = "NextJS"
	SkillTailwindCSS Skill = "TailwindCSS"
	SkillHTML        Skill = "HTML"
	SkillCSS         Skill = "CSS"
	SkillSQL         Skill = "SQL"
	SkillMongoDB     Skill = "MongoDB"
	SkillPostgreSQL  Skill = "PostgreSQL"
	SkillExpressJS   Skill = "ExpressJS"
	SkillDjango      Skill = "Django"
	SkillFlask       Skill = "Flask"
	SkillAWS         Skill = "AWS"
	SkillDocker      Skill = "Docker"
	SkillGit         Skill = "Git"
	SkillFigma       Skill = "Figma"
	SkillJava        Skill = "Java"
	SkillGoLang      Skill = "GoLang"
	SkillRust        Skill = "Rust"
	SkillOther       Skill = "Other"
)

var allSkills = []Skill{
	SkillC, SkillCPP, SkillPython, SkillJavaScript, SkillTypeScript,
	SkillNodeJS, SkillReactJS, SkillNextJS, SkillTailwindCSS, SkillHTML,
	SkillCSS, SkillSQL, SkillMongoDB, SkillPostgreSQL, SkillExpressJS,
	SkillDjango, SkillFlask, SkillAWS, SkillDocker, SkillGit,
	SkillFigma, SkillJava, SkillGoLang, SkillRust, SkillOther,
}

var validSkills = func() map[Skill]bool {
	m := make(map[Skill]bool, len(allSkills))
	for _, s := range allSkills {
		m[s] = true
	}
	return m
}()

// AllSkills returns the vocabulary in its declared order.
func AllSkills() []Skill {
	out := make([]Skill, len(allSkills))
	copy(out, allSkills)
	return out
}

func IsValidSkill(s string) bool {
	return validSkills[Skill(s)]
}

// FilterSkills keeps the known skills of input, in input order, without duplicates.
func FilterSkills(input []string) []Skill {
	seen := make(map[Skill]bool, len(input))
	out := make([]Skill, 0, len(input))
	for _, raw := range input {
		s := Skill(raw)
		if !validSkills[s] || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// SkillSet is a student's skills keyed for lookup.
type SkillSet map[Skill]struct{}

func NewSkillSet(skills []Skill) SkillSet {
	set := make(SkillSet, len(skills))
	for _, s := range skills {
		set[s] = struct{}{}
	}
	return set
}

func (s SkillSet) Has(skill Skill) bool {
	_, ok := s[skill]
	return ok
}

type StudentSkill struct {
	ID        uint  `gorm:"primaryKey" json:"-"`
	StudentID uint  `gorm:"not null;uniqueIndex:uidx_student_skills_student_skill" json:"studentId"`
	Skill     Skill `gorm:"type:varchar(50);not null;uniqueIndex:uidx_student_skills_student_skill" json:"skill"`
}
