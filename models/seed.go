package models

// Seed lists bundled with the site. They are served when the backend is
// unusable and are what an administrator seeds into an empty backend.
// Each call returns fresh copies so callers may mutate the result.

func boolPtr(b bool) *bool {
	return &b
}

// SeedAttorneys returns the bundled attorney profiles
func SeedAttorneys() []Attorney {
	return []Attorney{
		{
			ID:        "1",
			Name:      "Sarah Johnson",
			Position:  "Managing Partner",
			Specialty: "Corporate Law",
			Bio:       "Sarah Johnson is the founding and managing partner of SleekLegal. With over 15 years of experience in corporate law, she has guided numerous businesses through complex legal challenges. Sarah specializes in mergers and acquisitions, corporate governance, and commercial contracts. Her strategic approach and deep understanding of business principles make her an invaluable asset to corporate clients.",
			Education: []string{
				"J.D., Harvard Law School",
				"B.A. in Economics, Yale University",
			},
			ImageURL: "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?auto=format&fit=crop&q=80",
			Email:    "sarah.johnson@sleeklegal.com",
			Phone:    "+1 (555) 123-4567",
			LinkedIn: "#",
			Featured: boolPtr(true),
		},
		{
			ID:        "2",
			Name:      "Michael Chen",
			Position:  "Senior Partner",
			Specialty: "Litigation",
			Bio:       "Michael Chen is a senior partner specializing in complex litigation matters. With a reputation for being a tenacious advocate, Michael has successfully represented clients in high-stakes litigation across multiple industries. His expertise includes commercial disputes, class actions, and product liability defense. Michael is known for his compelling courtroom presence and strategic case management.",
			Education: []string{
				"J.D., Stanford Law School",
				"B.S. in Political Science, UC Berkeley",
			},
			ImageURL: "https://images.unsplash.com/photo-1560250097-0b93528c311a?auto=format&fit=crop&q=80",
			Email:    "michael.chen@sleeklegal.com",
			Phone:    "+1 (555) 987-6543",
			LinkedIn: "#",
			Featured: boolPtr(true),
		},
		{
			ID:        "3",
			Name:      "Jessica Rodriguez",
			Position:  "Partner",
			Specialty: "Family Law",
			Bio:       "Jessica Rodriguez leads our Family Law practice with compassion and determination. She understands the emotional complexities of family legal matters and provides personalized guidance to clients during challenging times. Jessica handles divorce proceedings, child custody arrangements, adoption, and prenuptial agreements with sensitivity and professional expertise.",
			Education: []string{
				"J.D., Columbia Law School",
				"B.A. in Psychology, NYU",
			},
			ImageURL: "https://images.unsplash.com/photo-1580894732444-8ecded7900cd?auto=format&fit=crop&q=80",
			Email:    "jessica.rodriguez@sleeklegal.com",
			Phone:    "+1 (555) 456-7890",
			LinkedIn: "#",
		},
		{
			ID:        "4",
			Name:      "David Wilson",
			Position:  "Associate",
			Specialty: "Real Estate",
			Bio:       "David Wilson is an associate attorney focusing on real estate law. He assists clients with property acquisitions, sales, leasing, and land use matters. David's detail-oriented approach ensures that real estate transactions proceed smoothly and that clients' interests are protected. He works with both individual and commercial property investors to navigate complex real estate laws.",
			Education: []string{
				"J.D., Georgetown University Law Center",
				"B.B.A. in Real Estate, University of Michigan",
			},
			ImageURL: "https://images.unsplash.com/photo-1519085360753-af0119f7cbe7?auto=format&fit=crop&q=80",
			Email:    "david.wilson@sleeklegal.com",
			Phone:    "+1 (555) 789-0123",
			LinkedIn: "#",
		},
	}
}

// SeedBlogPosts returns the bundled blog posts, newest first
func SeedBlogPosts() []BlogPost {
	return []BlogPost{
		{
			ID:       "1",
			Title:    "Understanding Personal Injury Claims",
			Content:  `<p>Personal injury law encompasses a wide range of situations where someone suffers harm from an accident or injury, and someone else might be legally responsible. The legal system aims to make the injured person "whole" again through monetary compensation, known as damages.</p><p>To establish a valid personal injury claim, you generally need to prove:</p><ul><li>The party at fault had a duty to act in a certain way</li><li>They breached that duty</li><li>The breach caused your injury</li><li>You suffered damages as a result</li></ul><p>Personal injury cases can arise from various scenarios, including car accidents, slip and falls, medical malpractice, workplace injuries, and product liability. Each type of case has its own specific legal considerations and requirements.</p><p>If you believe you have a personal injury claim, it's crucial to consult with an experienced attorney who can evaluate your case and guide you through the legal process.</p>`,
			Excerpt:  "Learn about the fundamentals of personal injury claims and what you need to prove to establish a valid case.",
			Author:   "Sarah Johnson",
			Date:     "2023-05-15",
			Category: "Personal Injury",
			ImageURL: "https://images.unsplash.com/photo-1589829545856-d10d557cf95f?auto=format&fit=crop&q=80",
			Featured: boolPtr(true),
		},
		{
			ID:       "2",
			Title:    "The Importance of Estate Planning",
			Content:  `<p>Estate planning is a critical process that everyone should undertake, regardless of age or wealth. It involves making arrangements for the management and disposal of your estate during your life and after death, while minimizing gift, estate, generation-skipping transfer, and income tax.</p><p>A comprehensive estate plan typically includes:</p><ul><li>A will or trust</li><li>Power of attorney designations</li><li>Beneficiary designations</li><li>Letter of intent</li><li>Healthcare directives</li></ul><p>Without proper estate planning, your assets may be distributed according to state law rather than your wishes. Additionally, the probate process can be lengthy and costly for your heirs.</p><p>Estate planning is not just for the wealthy. It's about ensuring your assets are distributed according to your wishes and minimizing the burden on your loved ones during a difficult time.</p>`,
			Excerpt:  "Discover why estate planning is important for everyone and what elements make up a comprehensive estate plan.",
			Author:   "Michael Chen",
			Date:     "2023-06-22",
			Category: "Estate Planning",
			ImageURL: "https://images.unsplash.com/photo-1450101499163-c8848c66ca85?auto=format&fit=crop&q=80",
		},
		{
			ID:       "3",
			Title:    "Navigating Child Custody Disputes",
			Content:  `<p>Child custody disputes are among the most emotionally challenging aspects of family law. Courts always prioritize the best interests of the child when making custody determinations, but this standard can be interpreted in various ways.</p><p>There are several types of custody arrangements:</p><ul><li>Legal custody: The right to make important decisions about the child's upbringing</li><li>Physical custody: Where the child lives</li><li>Joint custody: Shared by both parents</li><li>Sole custody: Granted to one parent</li></ul><p>When determining custody, courts consider factors such as the child's relationship with each parent, the stability of each home environment, each parent's ability to provide for the child's needs, and sometimes the child's preferences (depending on age).</p><p>If you're facing a custody dispute, it's essential to work with an attorney who specializes in family law and can advocate for your rights while keeping the focus on your child's best interests.</p>`,
			Excerpt:  "Learn about different types of custody arrangements and how courts determine what's in the best interest of the child.",
			Author:   "Jessica Rodriguez",
			Date:     "2023-07-10",
			Category: "Family Law",
			ImageURL: "https://images.unsplash.com/photo-1502086223501-7ea6ecd79368?auto=format&fit=crop&q=80",
		},
	}
}

// SeedTestimonials returns the bundled client testimonials
func SeedTestimonials() []Testimonial {
	return []Testimonial{
		{
			ID:       "1",
			Name:     "John Smith",
			Position: "CEO, Tech Innovations",
			Content:  "The corporate legal team at SleekLegal handled our merger with exceptional professionalism. Their attention to detail and strategic approach saved us from potential complications and ensured a smooth transition. I highly recommend their services to any business navigating complex legal matters.",
			ImageURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&q=80",
			Rating:   5,
			Date:     "2023-04-15",
			CaseType: "Corporate Law",
			Featured: boolPtr(true),
		},
		{
			ID:       "2",
			Name:     "Emily Richardson",
			Position: "Small Business Owner",
			Content:  "When I needed help with my small business formation, SleekLegal provided clear guidance through every step of the process. They explained complex legal concepts in terms I could understand and helped me make informed decisions. Their expertise was invaluable in getting my business off to a strong start.",
			ImageURL: "https://images.unsplash.com/photo-1573497019940-1c28c88b4f3e?auto=format&fit=crop&q=80",
			Rating:   5,
			Date:     "2023-03-22",
			CaseType: "Business Formation",
			Featured: boolPtr(true),
		},
		{
			ID:       "3",
			Name:     "Robert Johnson",
			Content:  "After my accident, I was overwhelmed with medical bills and insurance claims. The personal injury team at SleekLegal took over and handled everything professionally. They fought for fair compensation and kept me informed throughout the process. I couldn't have asked for better representation during such a difficult time.",
			ImageURL: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?auto=format&fit=crop&q=80",
			Rating:   4,
			Date:     "2023-02-10",
			CaseType: "Personal Injury",
		},
		{
			ID:       "4",
			Name:     "Maria Gonzalez",
			Content:  "Jessica Rodriguez helped me navigate a challenging custody dispute with compassion and expertise. She always made me feel that my case was a priority and fought tirelessly for my children's best interests. The outcome exceeded my expectations, and I'm grateful for her dedication.",
			ImageURL: "https://images.unsplash.com/photo-1544005313-94ddf0286df2?auto=format&fit=crop&q=80",
			Rating:   5,
			Date:     "2023-01-05",
			CaseType: "Family Law",
		},
	}
}
