// Package dashboard mantém o estado de uma sessão do painel: a seleção
// limitada de municípios, o indicador ativo, a visão ativa (mapa ou
// comparação), a categoria e o termo de busca.
//
// O estado é um objeto explícito, nunca global. O Controller é o dono do
// State e garante que cada mutação seja seguida da nova renderização na mesma
// seção crítica; os renderizadores recebem apenas um Snapshot.
package dashboard
