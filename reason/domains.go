package reason

// domainKeywords maps a project-domain category to the technology tokens
// characteristic of it. Membership is tested against lowercased project
// names and descriptions.
var domainKeywords = map[string][]string{
	"Backend":   {"api", "backend", "database", "microservice", "payment", "migration"},
	"Frontend":  {"frontend", "react", "component", "ui", "redesign", "dashboard"},
	"Data":      {"data", "analytics", "pipeline", "etl", "spark", "warehouse"},
	"Mobile":    {"mobile", "ios", "android", "app"},
	"Platform":  {"ci/cd", "deployment", "infrastructure", "terraform", "sharding"},
	"ML":        {"machine learning", "recommendation", "model", "tensorflow"},
	"Security":  {"security", "audit", "vulnerability"},
}

// techKeywords is the allowlist of skills counted as technology overlap.
var techKeywords = map[string]bool{
	"Python": true, "Java": true, "JavaScript": true, "TypeScript": true,
	"Go": true, "Rust": true, "C++": true, "React": true, "Angular": true,
	"Vue": true, "Node.js": true, "SQL": true, "PostgreSQL": true,
	"MongoDB": true, "Redis": true, "Elasticsearch": true, "Docker": true,
	"Kubernetes": true, "Terraform": true, "AWS": true, "GCP": true,
	"Azure": true, "Kafka": true, "RabbitMQ": true, "GraphQL": true,
	"gRPC": true, "TensorFlow": true, "PyTorch": true,
}

// architecturePatterns maps keyword triggers (matched over skills plus
// project text) to a named architecture/tooling pattern.
var architecturePatterns = map[string][]string{
	"Microservices":                    {"microservice", "distributed"},
	"Containerization & Orchestration": {"docker", "kubernetes"},
	"Event-Driven Architecture":        {"kafka", "rabbitmq", "event"},
	"CI/CD Automation":                 {"ci/cd", "jenkins", "github actions", "pipeline automation"},
	"Infrastructure as Code":           {"terraform"},
	"API Design":                       {"graphql", "grpc", "rest api", "rate limiting"},
}

// seniorityScale orders the seniority categories for proximity checks.
// Unknown levels fall outside the scale and never count as matching.
var seniorityScale = map[string]int{
	"Junior":    0,
	"Mid-level": 1,
	"Senior":    2,
	"Staff":     3,
	"Principal": 4,
}

// seniorityRank returns the ordinal position of a seniority level, or -1
// when the level is not on the scale.
func seniorityRank(level string) int {
	if rank, ok := seniorityScale[level]; ok {
		return rank
	}
	return -1
}
