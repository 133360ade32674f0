package questionbank

// catalog maps role names to their ordered question lists. Order matters:
// Lookup truncates from the front, so the most broadly useful questions
// come first for each role.
var catalog = map[string][]Entry{
	"Full Stack Developer": {
		{
			Text:           "Explain the difference between REST and GraphQL APIs.",
			Type:           "technical",
			Difficulty:     "medium",
			ExpectedAnswer: "REST uses multiple endpoints with HTTP methods, while GraphQL uses a single endpoint with flexible queries. GraphQL allows clients to request specific data, reducing over-fetching.",
			Technologies:   []string{"API", "REST", "GraphQL"},
		},
		{
			Text:           "What is the difference between SQL and NoSQL databases?",
			Type:           "technical",
			Difficulty:     "medium",
			ExpectedAnswer: "SQL databases are relational with structured schemas, ACID compliance. NoSQL databases are non-relational, flexible schemas, better for horizontal scaling.",
			Technologies:   []string{"Database", "SQL", "NoSQL", "PostgreSQL", "MongoDB"},
		},
		{
			Text:           "Explain the concept of closures in JavaScript.",
			Type:           "technical",
			Difficulty:     "medium",
			ExpectedAnswer: "A closure is a function that has access to variables in its outer scope even after the outer function has returned. It creates a persistent scope.",
			Technologies:   []string{"JavaScript"},
		},
		{
			Text:           "How would you optimize a slow-loading web application?",
			Type:           "problem-solving",
			Difficulty:     "medium",
			ExpectedAnswer: "Code splitting, lazy loading, image optimization, caching, CDN usage, minification, database query optimization, and performance monitoring.",
			Technologies:   []string{"Performance", "React", "JavaScript", "CSS"},
		},
		{
			Text:           "Describe your experience with version control systems.",
			Type:           "experience",
			Difficulty:     "easy",
			ExpectedAnswer: "Experience with Git, branching strategies, merge conflicts resolution, pull requests, and collaborative development workflows.",
			Technologies:   []string{"Git", "GitHub"},
		},
		{
			Text:           "Explain React component lifecycle methods.",
			Type:           "technical",
			Difficulty:     "medium",
			ExpectedAnswer: "Lifecycle methods like componentDidMount, componentDidUpdate, componentWillUnmount control component behavior during mounting, updating, and unmounting phases.",
			Technologies:   []string{"React", "JavaScript"},
		},
		{
			Text:           "What is Node.js and how does it work?",
			Type:           "technical",
			Difficulty:     "medium",
			ExpectedAnswer: "Node.js is a JavaScript runtime built on Chrome V8 engine. It uses event-driven, non-blocking I/O model making it efficient for scalable network applications.",
			Technologies:   []string{"Node.js", "JavaScript"},
		},
		{
			Text:           "Explain database indexing and its importance.",
			Type:           "technical",
			Difficulty:     "medium",
			ExpectedAnswer: "Database indexing creates data structures to speed up query performance by avoiding full table scans, but increases storage and write overhead.",
			Technologies:   []string{"Database", "PostgreSQL", "SQL"},
		},
	},
	"Frontend Developer": {
		{
			Text:           "What are React Hooks and why are they useful?",
			Type:           "technical",
			Difficulty:     "medium",
			ExpectedAnswer: "Hooks allow functional components to use state and lifecycle methods. They promote code reuse and make components more readable.",
			Technologies:   []string{"React", "JavaScript"},
		},
		{
			Text:           "Explain the CSS Box Model.",
			Type:           "technical",
			Difficulty:     "easy",
			ExpectedAnswer: "The box model consists of content, padding, border, and margin. It determines how elements are sized and spaced.",
			Technologies:   []string{"CSS", "HTML"},
		},
		{
			Text:           "How do you ensure cross-browser compatibility?",
			Type:           "technical",
			Difficulty:     "medium",
			ExpectedAnswer: "Use CSS prefixes, polyfills, feature detection, testing across browsers, and following web standards.",
			Technologies:   []string{"CSS", "JavaScript", "HTML"},
		},
		{
			Text:           "What is the Virtual DOM in React?",
			Type:           "technical",
			Difficulty:     "medium",
			ExpectedAnswer: "Virtual DOM is a JavaScript representation of the real DOM. React uses it to efficiently update the UI by comparing changes.",
			Technologies:   []string{"React", "JavaScript"},
		},
		{
			Text:           "How do you optimize website performance?",
			Type:           "problem-solving",
			Difficulty:     "medium",
			ExpectedAnswer: "Image optimization, code splitting, lazy loading, caching, minification, CDN usage, and reducing HTTP requests.",
			Technologies:   []string{"Performance", "JavaScript", "CSS"},
		},
		{
			Text:           "Explain CSS Flexbox and Grid.",
			Type:           "technical",
			Difficulty:     "medium",
			ExpectedAnswer: "Flexbox is for one-dimensional layouts, Grid is for two-dimensional layouts. Both provide powerful layout capabilities.",
			Technologies:   []string{"CSS", "HTML"},
		},
		{
			Text:           "What is TypeScript and its benefits?",
			Type:           "technical",
			Difficulty:     "medium",
			ExpectedAnswer: "TypeScript adds static typing to JavaScript, providing better IDE support, early error detection, and improved code maintainability.",
			Technologies:   []string{"TypeScript", "JavaScript"},
		},
	},
	"Backend Developer": {
		{
			Text:           "Explain the difference between authentication and authorization.",
			Type:           "technical",
			Difficulty:     "medium",
			ExpectedAnswer: "Authentication verifies who you are (login), authorization determines what you can access (permissions).",
			Technologies:   []string{"Security", "API"},
		},
		{
			Text:           "What is database indexing and why is it important?",
			Type:           "technical",
			Difficulty:     "medium",
			ExpectedAnswer: "Indexing creates data structures to speed up query performance by avoiding full table scans, but increases storage and write overhead.",
			Technologies:   []string{"Database", "PostgreSQL", "SQL"},
		},
		{
			Text:           "How do you handle errors in a REST API?",
			Type:           "technical",
			Difficulty:     "medium",
			ExpectedAnswer: "Use appropriate HTTP status codes, consistent error response format, logging, and graceful error handling with try-catch blocks.",
			Technologies:   []string{"API", "REST", "Node.js"},
		},
		{
			Text:           "Explain microservices architecture.",
			Type:           "technical",
			Difficulty:     "hard",
			ExpectedAnswer: "Microservices break applications into small, independent services that communicate via APIs, enabling scalability and technology diversity.",
			Technologies:   []string{"Architecture", "API"},
		},
		{
			Text:           "How do you ensure API security?",
			Type:           "technical",
			Difficulty:     "medium",
			ExpectedAnswer: "Use HTTPS, authentication tokens, input validation, rate limiting, CORS configuration, and security headers.",
			Technologies:   []string{"Security", "API", "Node.js"},
		},
		{
			Text:           "What is Docker and containerization?",
			Type:           "technical",
			Difficulty:     "medium",
			ExpectedAnswer: "Docker packages applications with dependencies into containers, ensuring consistent environments across development and production.",
			Technologies:   []string{"Docker", "DevOps"},
		},
	},
	"Data Scientist": {
		{
			Text:           "Explain the difference between supervised and unsupervised learning.",
			Type:           "technical",
			Difficulty:     "medium",
			ExpectedAnswer: "Supervised learning uses labeled data to predict outcomes, unsupervised learning finds patterns in unlabeled data.",
			Technologies:   []string{"Machine Learning", "Python"},
		},
		{
			Text:           "What is overfitting and how do you prevent it?",
			Type:           "technical",
			Difficulty:     "medium",
			ExpectedAnswer: "Overfitting occurs when a model learns training data too well. Prevent with cross-validation, regularization, and more training data.",
			Technologies:   []string{"Machine Learning", "Python"},
		},
		{
			Text:           "Explain the concept of feature engineering.",
			Type:           "technical",
			Difficulty:     "medium",
			ExpectedAnswer: "Feature engineering involves creating, selecting, and transforming variables to improve model performance and interpretability.",
			Technologies:   []string{"Machine Learning", "Python", "Data Analysis"},
		},
		{
			Text:           "How do you handle missing data in datasets?",
			Type:           "problem-solving",
			Difficulty:     "medium",
			ExpectedAnswer: "Methods include deletion, imputation (mean, median, mode), interpolation, or using algorithms that handle missing values.",
			Technologies:   []string{"Data Analysis", "Python", "Pandas"},
		},
		{
			Text:           "What metrics do you use to evaluate classification models?",
			Type:           "technical",
			Difficulty:     "medium",
			ExpectedAnswer: "Accuracy, precision, recall, F1-score, ROC-AUC, confusion matrix, depending on the problem and class distribution.",
			Technologies:   []string{"Machine Learning", "Python"},
		},
	},
}
