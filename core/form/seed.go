package form

// Default definitions seeded on first run, mirroring the paper enrollment
// form: 9 personal fields, 5 contact fields, 4 course fields and 5 document
// requirements.
//
// Course, shift and modality fields carry no static option catalog: the
// renderer populates them from the course collection.

func genderOptions() []FieldOption {
	return []FieldOption{
		{Value: "masculino", Label: "Masculino"},
		{Value: "feminino", Label: "Feminino"},
		{Value: "outro", Label: "Outro"},
		{Value: "nao_informar", Label: "Prefiro não informar"},
	}
}

func stateOptions() []FieldOption {
	return []FieldOption{
		{Value: "AC", Label: "Acre"},
		{Value: "AL", Label: "Alagoas"},
		{Value: "AP", Label: "Amapá"},
		{Value: "AM", Label: "Amazonas"},
		{Value: "BA", Label: "Bahia"},
		{Value: "CE", Label: "Ceará"},
		{Value: "DF", Label: "Distrito Federal"},
		{Value: "ES", Label: "Espírito Santo"},
		{Value: "GO", Label: "Goiás"},
		{Value: "MA", Label: "Maranhão"},
		{Value: "MT", Label: "Mato Grosso"},
		{Value: "MS", Label: "Mato Grosso do Sul"},
		{Value: "MG", Label: "Minas Gerais"},
		{Value: "PA", Label: "Pará"},
		{Value: "PB", Label: "Paraíba"},
		{Value: "PR", Label: "Paraná"},
		{Value: "PE", Label: "Pernambuco"},
		{Value: "PI", Label: "Piauí"},
		{Value: "RJ", Label: "Rio de Janeiro"},
		{Value: "RN", Label: "Rio Grande do Norte"},
		{Value: "RS", Label: "Rio Grande do Sul"},
		{Value: "RO", Label: "Rondônia"},
		{Value: "RR", Label: "Roraima"},
		{Value: "SC", Label: "Santa Catarina"},
		{Value: "SP", Label: "São Paulo"},
		{Value: "SE", Label: "Sergipe"},
		{Value: "TO", Label: "Tocantins"},
	}
}

func defaultFormFields() []FormField {
	return []FormField{
		{Name: "fullName", Label: "Nome Completo", Type: TypeText, Required: true, Order: 1, Section: SectionPersonal, Active: true},
		{Name: "cpf", Label: "CPF", Type: TypeText, Required: true, Order: 2, Section: SectionPersonal, Active: true},
		{Name: "rg", Label: "RG", Type: TypeText, Required: true, Order: 3, Section: SectionPersonal, Active: true},
		{Name: "birthDate", Label: "Data de Nascimento", Type: TypeDate, Required: true, Order: 4, Section: SectionPersonal, Active: true},
		{Name: "gender", Label: "Gênero", Type: TypeSelect, Required: true, Order: 5, Section: SectionPersonal, Active: true, Options: genderOptions()},
		{Name: "address", Label: "Endereço", Type: TypeText, Required: true, Order: 6, Section: SectionPersonal, Active: true},
		{Name: "city", Label: "Cidade", Type: TypeText, Required: true, Order: 7, Section: SectionPersonal, Active: true},
		{Name: "state", Label: "Estado", Type: TypeSelect, Required: true, Order: 8, Section: SectionPersonal, Active: true, Options: stateOptions()},
		{Name: "zipCode", Label: "CEP", Type: TypeText, Required: true, Order: 9, Section: SectionPersonal, Active: true},

		{Name: "email", Label: "Email", Type: TypeEmail, Required: true, Order: 1, Section: SectionContact, Active: true},
		{Name: "phone", Label: "Telefone Celular", Type: TypeTel, Required: true, Order: 2, Section: SectionContact, Active: true},
		{Name: "whatsapp", Label: "WhatsApp", Type: TypeTel, Required: false, Order: 3, Section: SectionContact, Active: true},
		{Name: "emergencyContact", Label: "Nome do Contato de Emergência", Type: TypeText, Required: false, Order: 4, Section: SectionContact, Active: true},
		{Name: "emergencyPhone", Label: "Telefone de Emergência", Type: TypeTel, Required: false, Order: 5, Section: SectionContact, Active: true},

		{Name: "course", Label: "Curso Desejado", Type: TypeSelect, Required: true, Order: 1, Section: SectionCourse, Active: true},
		{Name: "shift", Label: "Turno", Type: TypeRadio, Required: true, Order: 2, Section: SectionCourse, Active: true},
		{Name: "modality", Label: "Modalidade", Type: TypeRadio, Required: true, Order: 3, Section: SectionCourse, Active: true},
		{Name: "additionalInfo", Label: "Informações Adicionais", Type: TypeTextarea, Required: false, Order: 4, Section: SectionCourse, Active: true},
	}
}

func defaultRequirements() []DocumentRequirement {
	return []DocumentRequirement{
		{Name: "RG (frente e verso)", Description: "Documento de identidade com foto", Required: true, Active: true, Order: 1},
		{Name: "CPF", Description: "Cadastro de Pessoa Física", Required: true, Active: true, Order: 2},
		{Name: "Comprovante de Residência", Description: "Conta de água, luz ou telefone (últimos 3 meses)", Required: true, Active: true, Order: 3},
		{Name: "Certificado de Conclusão do Ensino Médio", Description: "Documento oficial que comprove a conclusão do ensino médio", Required: true, Active: true, Order: 4},
		{Name: "Foto 3x4 recente", Description: "Foto colorida com fundo branco", Required: true, Active: true, Order: 5},
	}
}
