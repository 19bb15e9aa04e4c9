package course

import "time"

func defaultCourses() []Course {
	now := time.Now().UTC()
	return []Course{
		{
			Name:        "Administração",
			Code:        "ADM",
			Description: "Curso de Administração com ênfase em gestão de negócios e empreendedorismo",
			Duration:    48,
			Coordinator: "Dra. Ana Silva",
			Price:       799.90,
			Active:      true,
			CreatedAt:   now,
		},
		{
			Name:        "Engenharia Civil",
			Code:        "ENG-CIV",
			Description: "Engenharia Civil com foco em construção sustentável e projetos urbanos",
			Duration:    60,
			Coordinator: "Dr. Carlos Oliveira",
			Price:       1299.90,
			Active:      true,
			CreatedAt:   now,
		},
		{
			Name:        "Direito",
			Code:        "DIR",
			Description: "Curso de Direito com ênfase em Direito Digital e novas tecnologias",
			Duration:    60,
			Coordinator: "Dra. Patrícia Mendes",
			Price:       1199.90,
			Active:      true,
			CreatedAt:   now,
		},
		{
			Name:        "Ciência da Computação",
			Code:        "CC",
			Description: "Ciência da Computação com foco em desenvolvimento de software e IA",
			Duration:    48,
			Coordinator: "Dr. Bruno Costa",
			Price:       999.90,
			Active:      true,
			CreatedAt:   now,
		},
		{
			Name:        "Medicina",
			Code:        "MED",
			Description: "Curso de Medicina com ênfase em saúde pública e tecnologias médicas",
			Duration:    72,
			Coordinator: "Dra. Márcia Santos",
			Price:       5999.90,
			Active:      true,
			CreatedAt:   now,
		},
	}
}

func defaultShifts(courseID int) []Shift {
	return []Shift{
		{CourseID: courseID, Name: "Manhã", StartTime: "08:00", EndTime: "12:00", Weekdays: "seg,ter,qua,qui,sex", Active: true},
		{CourseID: courseID, Name: "Tarde", StartTime: "13:30", EndTime: "17:30", Weekdays: "seg,ter,qua,qui,sex", Active: true},
		{CourseID: courseID, Name: "Noite", StartTime: "19:00", EndTime: "22:30", Weekdays: "seg,ter,qua,qui,sex", Active: true},
	}
}

func defaultModalities(courseID int) []Modality {
	return []Modality{
		{CourseID: courseID, Name: "Presencial", Description: "Aulas totalmente presenciais", Active: true},
		{CourseID: courseID, Name: "Semipresencial", Description: "Aulas presenciais e online", Active: true},
		{CourseID: courseID, Name: "EAD", Description: "Ensino à distância com encontros online", Active: true},
	}
}
