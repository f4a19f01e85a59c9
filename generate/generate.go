// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package generate produces synthetic employee rosters for seeding and
// demos. Generation is deterministic for a given seed.
package generate

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/piyushtamaskar21/collab-connect/core"
)

var roles = []string{
	"Software Engineer", "Senior Software Engineer", "Staff Engineer",
	"Backend Engineer", "Frontend Engineer", "Full Stack Engineer",
	"DevOps Engineer", "Data Engineer", "ML Engineer",
	"Engineering Manager", "Product Manager", "Tech Lead",
	"Designer", "UX Researcher", "QA Engineer",
}

var seniorityLevels = []string{"Junior", "Mid-level", "Senior", "Staff", "Principal"}

var departments = []string{
	"Engineering", "Product", "Design", "Data", "Platform Engineering", "Infrastructure",
}

var locations = []string{
	"San Francisco, CA", "New York, NY", "Seattle, WA", "Austin, TX",
	"Remote", "Berlin, Germany", "London, UK", "Toronto, Canada",
}

var techSkills = []string{
	"Python", "Java", "JavaScript", "TypeScript", "Go", "Rust", "C++",
	"React", "Angular", "Vue", "Node.js", "Django", "Flask", "FastAPI",
	"SQL", "PostgreSQL", "MongoDB", "Redis", "Elasticsearch",
	"AWS", "GCP", "Azure", "Docker", "Kubernetes", "Terraform",
	"Kafka", "RabbitMQ", "GraphQL", "REST API", "gRPC",
	"Machine Learning", "TensorFlow", "PyTorch", "Scikit-learn",
	"Git", "CI/CD", "Jenkins", "GitHub Actions", "Microservices",
}

var tools = []string{
	"VSCode", "IntelliJ", "Vim", "Jira", "Confluence", "Slack",
	"Figma", "Sketch", "Datadog", "Grafana", "Prometheus",
	"Postman", "Jupyter", "Tableau",
}

var interestPool = []string{
	"Open Source", "AI/ML", "Cloud Architecture", "DevOps",
	"Frontend Development", "Backend Systems", "Data Engineering",
	"Security", "Performance Optimization", "API Design",
}

var managers = []string{
	"Sarah Thompson", "Michael Chen", "Emily Rodriguez", "David Park", "Lisa Johnson",
}

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
	"Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan",
	"Joseph", "Jessica", "Thomas", "Karen", "Daniel", "Sophia", "Carlos",
	"Maria", "Wei", "Priya", "Ahmed", "Yuki", "Olga", "Lars", "Amara", "Diego",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Wilson",
	"Anderson", "Taylor", "Thomas", "Moore", "Jackson", "Martin", "Lee",
	"Nguyen", "Patel", "Kim", "Chen", "Singh", "Kowalski", "Novak", "Silva",
}

type projectTemplate struct {
	name     string
	desc     string
	techPool []string
}

var projectTemplates = []projectTemplate{
	{"Payment Gateway Modernization", "Migrated legacy payment system to microservices architecture, reducing latency by 40%", []string{"Java", "Kubernetes", "Kafka", "PostgreSQL"}},
	{"Real-time Analytics Dashboard", "Built scalable analytics platform processing 10M events/day", []string{"Python", "Kafka", "Elasticsearch", "React"}},
	{"Mobile App Redesign", "Led complete redesign of iOS/Android apps, increasing user engagement by 35%", []string{"React Native", "TypeScript", "GraphQL"}},
	{"Database Sharding Initiative", "Implemented horizontal sharding to support 10x traffic growth", []string{"PostgreSQL", "Python", "Redis"}},
	{"CI/CD Pipeline Automation", "Automated deployment pipeline, reducing release time from 2 days to 2 hours", []string{"Docker", "Kubernetes", "Jenkins", "Terraform"}},
	{"ML-powered Recommendation Engine", "Developed personalized recommendations using collaborative filtering", []string{"Python", "TensorFlow", "Kubernetes", "PostgreSQL"}},
	{"API Rate Limiting Service", "Built distributed rate limiting service handling 100K requests/sec", []string{"Go", "Redis", "Kubernetes"}},
	{"Data Pipeline Optimization", "Optimized ETL pipelines, reducing processing time by 60%", []string{"Python", "Apache Spark", "Airflow", "AWS"}},
	{"Frontend Component Library", "Created reusable component library used across 15+ products", []string{"React", "TypeScript", "Storybook"}},
	{"Security Audit Platform", "Built automated security scanning and vulnerability reporting system", []string{"Python", "Docker", "PostgreSQL"}},
}

var summaryTemplates = []string{
	"%[1]s with %[2]d years of experience in %[3]s. Passionate about building scalable systems and mentoring junior engineers.",
	"Experienced %[1]s specializing in %[3]s. Strong background in distributed systems and cloud infrastructure.",
	"%[1]s focused on %[3]s. Known for delivering high-quality code and driving technical excellence.",
	"Senior %[1]s with expertise in %[3]s. Led multiple cross-functional teams to successful product launches.",
	"%[1]s passionate about %[3]s. Combines technical depth with strong communication skills.",
}

var roleDomains = map[string]string{
	"Backend Engineer":    "backend development and API design",
	"Frontend Engineer":   "modern frontend frameworks and UI/UX",
	"Full Stack Engineer": "end-to-end web application development",
	"DevOps Engineer":     "infrastructure automation and cloud deployment",
	"Data Engineer":       "data pipeline development and analytics",
	"ML Engineer":         "machine learning and predictive modeling",
}

// Roster generates count synthetic employees. The same seed always produces
// the same roster; employee ids are positional ("emp001", ...) and email
// suffixes are content-derived, so re-seeding keeps identities stable.
func Roster(count int, seed int64) []*core.Employee {
	rng := rand.New(rand.NewSource(seed))

	employees := make([]*core.Employee, 0, count)
	for i := 0; i < count; i++ {
		name := pick(rng, firstNames) + " " + pick(rng, lastNames)
		role := pick(rng, roles)

		skills := sample(rng, techSkills, 6+rng.Intn(7)) // 6-12
		primary := skills[:4]
		secondary := []string{}
		if len(skills) > 4 {
			secondary = skills[4:min(8, len(skills))]
		}

		projects := makeProjects(rng)
		years := 2 + rng.Intn(14) // 2-15
		summary := makeSummary(rng, role, years)

		emailSuffix := uint64(core.IDFromContent(name))%999 + 1
		email := fmt.Sprintf("%s.%d@company.com",
			strings.ReplaceAll(strings.ToLower(name), " ", "."), emailSuffix)

		emp := &core.Employee{
			Id:    fmt.Sprintf("emp%03d", i+1),
			Name:  name,
			Email: email,
			Profile: core.Profile{
				Role:                role,
				Seniority:           pick(rng, seniorityLevels),
				Department:          pick(rng, departments),
				Location:            pick(rng, locations),
				Manager:             pick(rng, managers),
				ExperienceYears:     years,
				ProfessionalSummary: summary,
				Skills:              skills,
				PrimarySkills:       primary,
				SecondarySkills:     secondary,
				Tools:               sample(rng, tools, 3+rng.Intn(4)), // 3-6
				Projects:            projects,
				Interests:           sample(rng, interestPool, 2+rng.Intn(3)), // 2-4
			},
		}
		emp.RawText = makeRawText(emp)
		employees = append(employees, emp)
	}
	return employees
}

func makeProjects(rng *rand.Rand) []core.Project {
	templates := sampleTemplates(rng, 2+rng.Intn(3)) // 2-4
	projects := make([]core.Project, 0, len(templates))
	for _, t := range templates {
		numTech := 2 + rng.Intn(3) // 2-4
		if numTech > len(t.techPool) {
			numTech = len(t.techPool)
		}
		projects = append(projects, core.Project{
			Name:        t.name,
			Description: t.desc,
			Tech:        sample(rng, t.techPool, numTech),
		})
	}
	return projects
}

func makeSummary(rng *rand.Rand, role string, years int) string {
	domain, ok := roleDomains[role]
	if !ok {
		domain = "software development and system design"
	}
	return fmt.Sprintf(pick(rng, summaryTemplates), role, years, domain)
}

// makeRawText builds the embedding biography: identity, top skills, project
// history, then the professional summary.
func makeRawText(emp *core.Employee) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s is a %s with %d years of experience. ",
		emp.Name, emp.Profile.Role, emp.Profile.ExperienceYears)

	top := emp.Profile.PrimarySkills
	if len(top) > 3 {
		top = top[:3]
	}
	fmt.Fprintf(&b, "Expert in %s. ", strings.Join(top, ", "))
	fmt.Fprintf(&b, "Recently worked on: %s. ", strings.Join(emp.Profile.ProjectNames(), ", "))
	b.WriteString(emp.Profile.ProfessionalSummary)
	return b.String()
}

func pick(rng *rand.Rand, items []string) string {
	return items[rng.Intn(len(items))]
}

// sample returns n distinct items in shuffled order.
func sample(rng *rand.Rand, items []string, n int) []string {
	if n > len(items) {
		n = len(items)
	}
	perm := rng.Perm(len(items))
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = items[perm[i]]
	}
	return out
}

func sampleTemplates(rng *rand.Rand, n int) []projectTemplate {
	if n > len(projectTemplates) {
		n = len(projectTemplates)
	}
	perm := rng.Perm(len(projectTemplates))
	out := make([]projectTemplate, n)
	for i := 0; i < n; i++ {
		out[i] = projectTemplates[perm[i]]
	}
	return out
}
