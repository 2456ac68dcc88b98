package config

// DefaultCompanies is the tracked-company catalog used when no catalog is
// configured.
var DefaultCompanies = []string{
	"Apple Inc.", "LinkedIn", "Tesla", "Microsoft", "Google", "Amazon", "Facebook",
	"IBM", "Intel", "Oracle", "Nvidia", "Adobe", "Salesforce", "Netflix", "Uber",
	"Airbnb", "PayPal", "Twitter", "Snapchat", "Spotify", "Zoom", "Slack",
	"Dropbox", "Square", "Shopify", "Twilio", "Atlassian", "Workday", "ServiceNow",
	"DocuSign", "Okta", "Palantir", "Snowflake", "Splunk", "Crowdstrike", "Cloudflare",
	"Datadog", "MongoDB", "Elastic", "Zendesk", "HubSpot", "Box",
	"Coupa", "Fastly", "Ping Identity", "Dynatrace", "New Relic", "PagerDuty",
	"Zuora", "Alteryx", "Anaplan", "Asana", "Bill.com", "Domo", "Smartsheet",
	"SolarWinds", "Sprout Social", "Sumo Logic", "Tufin", "Yext", "ZScaler",
}

// DefaultTopics is the alert topic catalog. Order matters: ties in
// similarity ranking resolve by catalog position.
var DefaultTopics = []string{
	"CXO News", "Cybersecurity", "Artificial Intelligence", "Finance", "Mergers and Acquisitions",
	"Earnings Report", "Product Launch", "Market Expansion", "Regulatory Changes", "Innovation",
	"Sustainability", "Talent Acquisition", "Digital Transformation", "Supply Chain",
	"Customer Experience", "Data Privacy", "Cloud Computing", "Blockchain", "Internet of Things",
	"5G Technology", "Renewable Energy", "E-commerce", "Remote Work", "Fintech",
	"Quantum Computing", "Augmented Reality", "Virtual Reality", "Robotics", "Autonomous Vehicles",
	"Space Technology", "Biotechnology", "Nanotechnology", "Cryptocurrency", "Machine Learning",
	"Edge Computing", "Big Data", "DevOps", "User Experience", "Mobile Technology",
	"Wearable Technology", "Smart Cities", "Green Technology", "3D Printing", "Drones",
	"Voice Technology", "Chatbots", "Natural Language Processing", "Computer Vision",
	"Predictive Analytics", "Personalization", "Biometrics", "Health Tech", "EdTech",
	"AgTech", "LegalTech", "PropTech", "InsurTech", "RegTech", "CleanTech",
	"Social Media Trends", "Influencer Marketing", "Content Marketing", "Growth Hacking",
}

// DefaultFeedURLs lists the business and technology news feeds polled when
// none are configured.
var DefaultFeedURLs = []string{
	"https://www.reutersagency.com/feed/?best-topics=business-finance&post_type=best",
	"https://www.cnbc.com/id/100003114/device/rss/rss.html",
	"https://techcrunch.com/feed/",
	"http://feeds.bbci.co.uk/news/business/rss.xml",
	"https://feeds.a.dj.com/rss/WSJcomUSBusiness.xml",
	"https://fortune.com/feed",
	"https://www.forbes.com/business/feed/",
	"https://www.entrepreneur.com/latest.rss",
	"https://feeds.feedburner.com/venturebeat/SZYF",
	"https://www.wired.com/feed/category/business/latest/rss",
	"https://www.businessinsider.com/rss",
	"https://www.fastcompany.com/rss",
	"https://hbr.org/rss/current",
	"https://www.inc.com/rss/",
	"https://www.eweek.com/feed/",
	"https://www.zdnet.com/news/rss.xml",
	"https://www.computerworld.com/index.rss",
	"https://www.cio.com/index.rss",
	"https://www.infoworld.com/index.rss",
}
