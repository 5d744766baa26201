package rules

// SkillVocabulary is the fixed skill list matched by substring against
// lowercased resume text. Order is preserved in extraction output.
var SkillVocabulary = []string{
	// languages
	"java", "python", "javascript", "typescript", "kotlin", "swift", "go", "rust",
	"c++", "c#", "ruby", "php", "scala",
	// frameworks
	"react", "vue", "angular", "next.js", "nuxt", "spring", "django", "flask",
	"fastapi", "express", "nestjs", "rails",
	// mobile
	"ios", "android", "flutter", "react native", "swiftui", "uikit", "jetpack compose",
	// data / ML
	"tensorflow", "pytorch", "pandas", "numpy", "scikit-learn", "spark", "hadoop",
	"airflow", "kafka",
	// infrastructure
	"aws", "gcp", "azure", "kubernetes", "docker", "terraform", "jenkins", "github actions",
	// databases
	"mysql", "postgresql", "mongodb", "redis", "elasticsearch", "dynamodb",
	// tooling and misc
	"git", "jira", "figma", "sketch", "sql", "graphql", "rest api", "grpc",
}
